// Package content holds the portfolio data model boundary: the Postgres
// store, the render-time resolver and the built-in default content.
package content

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"portfolio-backend-go/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Store implements Source against Postgres via sqlx.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

var _ Source = (*Store)(nil)

// fail is the observability sink for the error boundary: storage failures
// are logged here and callers only ever see sentinel values.
func (s *Store) fail(op string, err error) {
	log.Printf("content: %s: %v", op, err)
}

func (s *Store) Hero(ctx context.Context) *models.HeroContent {
	var row models.HeroContent
	err := s.db.GetContext(ctx, &row, `
SELECT id, headline, subheadline, description, cta_text, cta_button_text
FROM portfolio_hero LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		s.fail("fetch hero", err)
		return nil
	}
	return &row
}

func (s *Store) About(ctx context.Context) *models.AboutContent {
	var row models.AboutContent
	err := s.db.GetContext(ctx, &row, `
SELECT id, summary, approach, experience_years, tests_written, bugs_found,
       success_rate, test_coverage, projects_delivered
FROM portfolio_about LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		s.fail("fetch about", err)
		return nil
	}
	return &row
}

func (s *Store) Settings(ctx context.Context) *models.PortfolioSettings {
	var row models.PortfolioSettings
	err := s.db.GetContext(ctx, &row, `
SELECT id, site_title, site_title_alternate, site_description, email
FROM portfolio_settings LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		s.fail("fetch settings", err)
		return nil
	}
	return &row
}

func (s *Store) Skills(ctx context.Context) []models.Skill {
	rows := []models.Skill{}
	if err := s.db.SelectContext(ctx, &rows, `
SELECT id, name, icon_type, color, display_order
FROM portfolio_skills
ORDER BY display_order ASC, id ASC`); err != nil {
		s.fail("fetch skills", err)
		return []models.Skill{}
	}
	return rows
}

func (s *Store) TechStack(ctx context.Context) []models.TechStack {
	rows := []models.TechStack{}
	if err := s.db.SelectContext(ctx, &rows, `
SELECT id, name
FROM portfolio_tech_stack
ORDER BY seq ASC`); err != nil {
		s.fail("fetch tech stack", err)
		return []models.TechStack{}
	}
	return rows
}

func (s *Store) Achievements(ctx context.Context) []models.Achievement {
	rows := []models.Achievement{}
	if err := s.db.SelectContext(ctx, &rows, `
SELECT id, title, metric, description, icon_type, color, status, display_order
FROM portfolio_achievements
ORDER BY display_order ASC, id ASC`); err != nil {
		s.fail("fetch achievements", err)
		return []models.Achievement{}
	}
	return rows
}

func (s *Store) EducationEntries(ctx context.Context) []models.Education {
	rows := []models.Education{}
	if err := s.db.SelectContext(ctx, &rows, `
SELECT id, title, subtitle, institution, date, type, version, icon_type, color, display_order
FROM portfolio_education
ORDER BY display_order ASC, id ASC`); err != nil {
		s.fail("fetch education", err)
		return []models.Education{}
	}
	return rows
}

func (s *Store) SocialLinks(ctx context.Context) []models.SocialLink {
	rows := []models.SocialLink{}
	if err := s.db.SelectContext(ctx, &rows, `
SELECT id, platform, url, icon_type, display_order
FROM portfolio_social_links
ORDER BY display_order ASC, id ASC`); err != nil {
		s.fail("fetch social links", err)
		return []models.SocialLink{}
	}
	return rows
}

func (s *Store) Projects(ctx context.Context) []models.QAProject {
	rows := []models.QAProject{}
	if err := s.db.SelectContext(ctx, &rows, `
SELECT id, ticket_id, name, priority, status, tools, role, responsibilities,
       outcome, icon_type, color, created_at, updated_at
FROM qa_projects
ORDER BY created_at DESC`); err != nil {
		s.fail("fetch projects", err)
		return []models.QAProject{}
	}
	return rows
}

// singletonID looks up the id of the one row of table, returning "" when
// the table is still empty.
func (s *Store) singletonID(ctx context.Context, table string) (string, error) {
	var id string
	err := s.db.GetContext(ctx, &id, `SELECT id FROM `+table+` LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return id, err
}

func (s *Store) UpdateHero(ctx context.Context, in models.HeroContent) *models.HeroContent {
	id, err := s.singletonID(ctx, "portfolio_hero")
	if err != nil {
		s.fail("update hero", err)
		return nil
	}
	if id == "" {
		in.ID = uuid.NewString()
		if _, err := s.db.ExecContext(ctx, `
INSERT INTO portfolio_hero (id, headline, subheadline, description, cta_text, cta_button_text)
VALUES ($1,$2,$3,$4,$5,$6)`,
			in.ID, in.Headline, in.Subheadline, in.Description, in.CtaText, in.CtaButtonText); err != nil {
			s.fail("insert hero", err)
			return nil
		}
		return &in
	}
	var row models.HeroContent
	if err := s.db.GetContext(ctx, &row, `
UPDATE portfolio_hero
SET headline = $2, subheadline = $3, description = $4, cta_text = $5, cta_button_text = $6
WHERE id = $1
RETURNING id, headline, subheadline, description, cta_text, cta_button_text`,
		id, in.Headline, in.Subheadline, in.Description, in.CtaText, in.CtaButtonText); err != nil {
		s.fail("update hero", err)
		return nil
	}
	return &row
}

func (s *Store) UpdateAbout(ctx context.Context, in models.AboutContent) *models.AboutContent {
	id, err := s.singletonID(ctx, "portfolio_about")
	if err != nil {
		s.fail("update about", err)
		return nil
	}
	if id == "" {
		in.ID = uuid.NewString()
		if _, err := s.db.ExecContext(ctx, `
INSERT INTO portfolio_about (id, summary, approach, experience_years, tests_written,
  bugs_found, success_rate, test_coverage, projects_delivered)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
			in.ID, in.Summary, in.Approach, in.ExperienceYears, in.TestsWritten,
			in.BugsFound, in.SuccessRate, in.TestCoverage, in.ProjectsDelivered); err != nil {
			s.fail("insert about", err)
			return nil
		}
		return &in
	}
	var row models.AboutContent
	if err := s.db.GetContext(ctx, &row, `
UPDATE portfolio_about
SET summary = $2, approach = $3, experience_years = $4, tests_written = $5,
    bugs_found = $6, success_rate = $7, test_coverage = $8, projects_delivered = $9
WHERE id = $1
RETURNING id, summary, approach, experience_years, tests_written, bugs_found,
          success_rate, test_coverage, projects_delivered`,
		id, in.Summary, in.Approach, in.ExperienceYears, in.TestsWritten,
		in.BugsFound, in.SuccessRate, in.TestCoverage, in.ProjectsDelivered); err != nil {
		s.fail("update about", err)
		return nil
	}
	return &row
}

func (s *Store) UpdateSettings(ctx context.Context, in models.PortfolioSettings) *models.PortfolioSettings {
	id, err := s.singletonID(ctx, "portfolio_settings")
	if err != nil {
		s.fail("update settings", err)
		return nil
	}
	if id == "" {
		in.ID = uuid.NewString()
		if _, err := s.db.ExecContext(ctx, `
INSERT INTO portfolio_settings (id, site_title, site_title_alternate, site_description, email)
VALUES ($1,$2,$3,$4,$5)`,
			in.ID, in.SiteTitle, in.SiteTitleAlternate, in.SiteDescription, in.Email); err != nil {
			s.fail("insert settings", err)
			return nil
		}
		return &in
	}
	var row models.PortfolioSettings
	if err := s.db.GetContext(ctx, &row, `
UPDATE portfolio_settings
SET site_title = $2, site_title_alternate = $3, site_description = $4, email = $5
WHERE id = $1
RETURNING id, site_title, site_title_alternate, site_description, email`,
		id, in.SiteTitle, in.SiteTitleAlternate, in.SiteDescription, in.Email); err != nil {
		s.fail("update settings", err)
		return nil
	}
	return &row
}

func (s *Store) UpsertSkill(ctx context.Context, in models.Skill) *models.Skill {
	if in.ID == "" {
		in.ID = uuid.NewString()
		if _, err := s.db.ExecContext(ctx, `
INSERT INTO portfolio_skills (id, name, icon_type, color, display_order)
VALUES ($1,$2,$3,$4,$5)`,
			in.ID, in.Name, in.IconType, in.Color, in.DisplayOrder); err != nil {
			s.fail("insert skill", err)
			return nil
		}
		return &in
	}
	var row models.Skill
	if err := s.db.GetContext(ctx, &row, `
UPDATE portfolio_skills
SET name = $2, icon_type = $3, color = $4, display_order = $5
WHERE id = $1
RETURNING id, name, icon_type, color, display_order`,
		in.ID, in.Name, in.IconType, in.Color, in.DisplayOrder); err != nil {
		s.fail("update skill", err)
		return nil
	}
	return &row
}

func (s *Store) UpsertTechStack(ctx context.Context, in models.TechStack) *models.TechStack {
	if in.ID == "" {
		in.ID = uuid.NewString()
		if _, err := s.db.ExecContext(ctx, `
INSERT INTO portfolio_tech_stack (id, name) VALUES ($1,$2)`, in.ID, in.Name); err != nil {
			s.fail("insert tech stack", err)
			return nil
		}
		return &in
	}
	var row models.TechStack
	if err := s.db.GetContext(ctx, &row, `
UPDATE portfolio_tech_stack SET name = $2 WHERE id = $1 RETURNING id, name`,
		in.ID, in.Name); err != nil {
		s.fail("update tech stack", err)
		return nil
	}
	return &row
}

func (s *Store) UpsertAchievement(ctx context.Context, in models.Achievement) *models.Achievement {
	if in.ID == "" {
		in.ID = uuid.NewString()
		if _, err := s.db.ExecContext(ctx, `
INSERT INTO portfolio_achievements (id, title, metric, description, icon_type, color, status, display_order)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
			in.ID, in.Title, in.Metric, in.Description, in.IconType, in.Color, in.Status, in.DisplayOrder); err != nil {
			s.fail("insert achievement", err)
			return nil
		}
		return &in
	}
	var row models.Achievement
	if err := s.db.GetContext(ctx, &row, `
UPDATE portfolio_achievements
SET title = $2, metric = $3, description = $4, icon_type = $5, color = $6, status = $7, display_order = $8
WHERE id = $1
RETURNING id, title, metric, description, icon_type, color, status, display_order`,
		in.ID, in.Title, in.Metric, in.Description, in.IconType, in.Color, in.Status, in.DisplayOrder); err != nil {
		s.fail("update achievement", err)
		return nil
	}
	return &row
}

func (s *Store) UpsertEducation(ctx context.Context, in models.Education) *models.Education {
	if in.ID == "" {
		in.ID = uuid.NewString()
		if _, err := s.db.ExecContext(ctx, `
INSERT INTO portfolio_education (id, title, subtitle, institution, date, type, version, icon_type, color, display_order)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
			in.ID, in.Title, in.Subtitle, in.Institution, in.Date, in.Type, in.Version,
			in.IconType, in.Color, in.DisplayOrder); err != nil {
			s.fail("insert education", err)
			return nil
		}
		return &in
	}
	var row models.Education
	if err := s.db.GetContext(ctx, &row, `
UPDATE portfolio_education
SET title = $2, subtitle = $3, institution = $4, date = $5, type = $6, version = $7,
    icon_type = $8, color = $9, display_order = $10
WHERE id = $1
RETURNING id, title, subtitle, institution, date, type, version, icon_type, color, display_order`,
		in.ID, in.Title, in.Subtitle, in.Institution, in.Date, in.Type, in.Version,
		in.IconType, in.Color, in.DisplayOrder); err != nil {
		s.fail("update education", err)
		return nil
	}
	return &row
}

func (s *Store) UpsertSocialLink(ctx context.Context, in models.SocialLink) *models.SocialLink {
	if in.ID == "" {
		in.ID = uuid.NewString()
		if _, err := s.db.ExecContext(ctx, `
INSERT INTO portfolio_social_links (id, platform, url, icon_type, display_order)
VALUES ($1,$2,$3,$4,$5)`,
			in.ID, in.Platform, in.URL, in.IconType, in.DisplayOrder); err != nil {
			s.fail("insert social link", err)
			return nil
		}
		return &in
	}
	var row models.SocialLink
	if err := s.db.GetContext(ctx, &row, `
UPDATE portfolio_social_links
SET platform = $2, url = $3, icon_type = $4, display_order = $5
WHERE id = $1
RETURNING id, platform, url, icon_type, display_order`,
		in.ID, in.Platform, in.URL, in.IconType, in.DisplayOrder); err != nil {
		s.fail("update social link", err)
		return nil
	}
	return &row
}

func (s *Store) UpsertProject(ctx context.Context, in models.QAProject) *models.QAProject {
	now := nowUTC()
	if in.ID == "" {
		in.ID = uuid.NewString()
		in.CreatedAt = now
		in.UpdatedAt = now
		if _, err := s.db.ExecContext(ctx, `
INSERT INTO qa_projects (id, ticket_id, name, priority, status, tools, role,
  responsibilities, outcome, icon_type, color, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
			in.ID, in.TicketID, in.Name, in.Priority, in.Status, in.Tools, in.Role,
			in.Responsibilities, in.Outcome, in.IconType, in.Color, in.CreatedAt, in.UpdatedAt); err != nil {
			s.fail("insert project", err)
			return nil
		}
		return &in
	}
	var row models.QAProject
	if err := s.db.GetContext(ctx, &row, `
UPDATE qa_projects
SET ticket_id = $2, name = $3, priority = $4, status = $5, tools = $6, role = $7,
    responsibilities = $8, outcome = $9, icon_type = $10, color = $11, updated_at = $12
WHERE id = $1
RETURNING id, ticket_id, name, priority, status, tools, role, responsibilities,
          outcome, icon_type, color, created_at, updated_at`,
		in.ID, in.TicketID, in.Name, in.Priority, in.Status, in.Tools, in.Role,
		in.Responsibilities, in.Outcome, in.IconType, in.Color, now); err != nil {
		s.fail("update project", err)
		return nil
	}
	return &row
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

func (s *Store) Delete(ctx context.Context, kind Kind, id string) bool {
	table, ok := tables[kind]
	if !ok || IsSingleton(kind) {
		return false
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id); err != nil {
		s.fail("delete "+string(kind), err)
		return false
	}
	return true
}

func (s *Store) ResetAll(ctx context.Context, kind Kind) bool {
	table, ok := tables[kind]
	if !ok {
		return false
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM `+table); err != nil {
		s.fail("reset "+string(kind), err)
		return false
	}
	return true
}

func (s *Store) ReplaceSkills(ctx context.Context, items []models.Skill) bool {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.fail("replace skills", err)
		return false
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM portfolio_skills`); err != nil {
		s.fail("replace skills", err)
		return false
	}
	for _, item := range items {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO portfolio_skills (id, name, icon_type, color, display_order)
VALUES ($1,$2,$3,$4,$5)`,
			uuid.NewString(), item.Name, item.IconType, item.Color, item.DisplayOrder); err != nil {
			s.fail("replace skills", err)
			return false
		}
	}
	if err := tx.Commit(); err != nil {
		s.fail("replace skills", err)
		return false
	}
	return true
}

func (s *Store) ReplaceTechStack(ctx context.Context, items []models.TechStack) bool {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.fail("replace tech stack", err)
		return false
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM portfolio_tech_stack`); err != nil {
		s.fail("replace tech stack", err)
		return false
	}
	for _, item := range items {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO portfolio_tech_stack (id, name) VALUES ($1,$2)`,
			uuid.NewString(), item.Name); err != nil {
			s.fail("replace tech stack", err)
			return false
		}
	}
	if err := tx.Commit(); err != nil {
		s.fail("replace tech stack", err)
		return false
	}
	return true
}
