package models

import (
	"time"

	"github.com/lib/pq"
)

// HeroContent is the landing banner singleton. At most one row exists.
type HeroContent struct {
	ID            string `db:"id" json:"id"`
	Headline      string `db:"headline" json:"headline"`
	Subheadline   string `db:"subheadline" json:"subheadline"`
	Description   string `db:"description" json:"description"`
	CtaText       string `db:"cta_text" json:"cta_text"`
	CtaButtonText string `db:"cta_button_text" json:"cta_button_text"`
}

// AboutContent is the about-section singleton with its headline metrics.
type AboutContent struct {
	ID                string  `db:"id" json:"id"`
	Summary           string  `db:"summary" json:"summary"`
	Approach          string  `db:"approach" json:"approach"`
	ExperienceYears   int     `db:"experience_years" json:"experience_years"`
	TestsWritten      int     `db:"tests_written" json:"tests_written"`
	BugsFound         int     `db:"bugs_found" json:"bugs_found"`
	SuccessRate       float64 `db:"success_rate" json:"success_rate"`
	TestCoverage      float64 `db:"test_coverage" json:"test_coverage"`
	ProjectsDelivered int     `db:"projects_delivered" json:"projects_delivered"`
}

type Skill struct {
	ID           string `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	IconType     string `db:"icon_type" json:"icon_type"`
	Color        string `db:"color" json:"color"`
	DisplayOrder int    `db:"display_order" json:"display_order"`
}

// TechStack carries a bare name; the section renders it in insertion order.
type TechStack struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type Achievement struct {
	ID           string `db:"id" json:"id"`
	Title        string `db:"title" json:"title"`
	Metric       string `db:"metric" json:"metric"`
	Description  string `db:"description" json:"description"`
	IconType     string `db:"icon_type" json:"icon_type"`
	Color        string `db:"color" json:"color"`
	Status       string `db:"status" json:"status"`
	DisplayOrder int    `db:"display_order" json:"display_order"`
}

// Education covers both degrees and certifications; Date and Version are
// free-text labels, not parsed values.
type Education struct {
	ID           string `db:"id" json:"id"`
	Title        string `db:"title" json:"title"`
	Subtitle     string `db:"subtitle" json:"subtitle"`
	Institution  string `db:"institution" json:"institution"`
	Date         string `db:"date" json:"date"`
	Type         string `db:"type" json:"type"`
	Version      string `db:"version" json:"version"`
	IconType     string `db:"icon_type" json:"icon_type"`
	Color        string `db:"color" json:"color"`
	DisplayOrder int    `db:"display_order" json:"display_order"`
}

type SocialLink struct {
	ID           string `db:"id" json:"id"`
	Platform     string `db:"platform" json:"platform"`
	URL          string `db:"url" json:"url"`
	IconType     string `db:"icon_type" json:"icon_type"`
	DisplayOrder int    `db:"display_order" json:"display_order"`
}

// PortfolioSettings is the site-wide singleton. SiteTitleAlternate is only
// used by the title-rotation display.
type PortfolioSettings struct {
	ID                 string `db:"id" json:"id"`
	SiteTitle          string `db:"site_title" json:"site_title"`
	SiteTitleAlternate string `db:"site_title_alternate" json:"site_title_alternate"`
	SiteDescription    string `db:"site_description" json:"site_description"`
	Email              string `db:"email" json:"email"`
}

// QAProject is the only entity with audit timestamps.
type QAProject struct {
	ID               string         `db:"id" json:"id"`
	TicketID         string         `db:"ticket_id" json:"ticket_id"`
	Name             string         `db:"name" json:"name"`
	Priority         string         `db:"priority" json:"priority"`
	Status           string         `db:"status" json:"status"`
	Tools            pq.StringArray `db:"tools" json:"tools"`
	Role             string         `db:"role" json:"role"`
	Responsibilities pq.StringArray `db:"responsibilities" json:"responsibilities"`
	Outcome          string         `db:"outcome" json:"outcome"`
	IconType         string         `db:"icon_type" json:"icon_type"`
	Color            string         `db:"color" json:"color"`
	CreatedAt        time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at" json:"updated_at"`
}

// Project priority and status tags. Free text in storage; these are the
// values the editor offers.
const (
	PriorityHigh     = "HIGH"
	PriorityCritical = "CRITICAL"
	PriorityMedium   = "MEDIUM"

	StatusPassed     = "PASSED"
	StatusFailed     = "FAILED"
	StatusInProgress = "IN_PROGRESS"
)

// AdminUser backs the admin sign-in boundary.
type AdminUser struct {
	ID           string     `db:"id"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password_hash"`
	CreatedAt    time.Time  `db:"created_at"`
	LastLoginAt  *time.Time `db:"last_login_at"`
}

// ContactMessage is a stored contact-form submission.
type ContactMessage struct {
	ID        string    `db:"id"`
	FromName  string    `db:"from_name"`
	FromEmail string    `db:"from_email"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}

type ServerMetricSample struct {
	ID                string    `db:"id"`
	CapturedAt        time.Time `db:"captured_at"`
	HeapUsedBytes     int64     `db:"heap_used_bytes"`
	HeapMaxBytes      int64     `db:"heap_max_bytes"`
	SystemMemoryTotal int64     `db:"system_memory_total_bytes"`
	SystemMemoryUsed  int64     `db:"system_memory_used_bytes"`
	DiskTotalBytes    int64     `db:"disk_total_bytes"`
	DiskUsedBytes     int64     `db:"disk_used_bytes"`
	ProcessCpuLoad    float64   `db:"process_cpu_load"`
	SystemCpuLoad     float64   `db:"system_cpu_load"`
}
