package admin

import (
	"fmt"
	"strconv"
	"strings"

	"portfolio-backend-go/internal/content"
	"portfolio-backend-go/internal/models"
)

// Field describes one attribute the generic edit form renders. The per-kind
// lists below are the only per-entity customization the form needs; order
// matters, it is the render order.
type Field struct {
	Name    string `json:"name"`
	Numeric bool   `json:"numeric"`
}

var formFields = map[content.Kind][]Field{
	content.KindHero: {
		{Name: "headline"}, {Name: "subheadline"}, {Name: "description"},
		{Name: "cta_text"}, {Name: "cta_button_text"},
	},
	content.KindAbout: {
		{Name: "summary"}, {Name: "approach"},
		{Name: "experience_years", Numeric: true}, {Name: "tests_written", Numeric: true},
		{Name: "bugs_found", Numeric: true}, {Name: "success_rate", Numeric: true},
		{Name: "test_coverage", Numeric: true}, {Name: "projects_delivered", Numeric: true},
	},
	content.KindSkills: {
		{Name: "name"}, {Name: "icon_type"}, {Name: "color"},
		{Name: "display_order", Numeric: true},
	},
	// Tech stack is name-only; it carries no ordering field.
	content.KindTechStack: {
		{Name: "name"},
	},
	content.KindAchievements: {
		{Name: "title"}, {Name: "metric"}, {Name: "description"},
		{Name: "status"}, {Name: "icon_type"}, {Name: "color"},
	},
	content.KindProjects: {
		{Name: "ticket_id"}, {Name: "name"}, {Name: "role"}, {Name: "status"},
		{Name: "outcome"}, {Name: "icon_type"}, {Name: "color"},
	},
	content.KindEducation: {
		{Name: "title"}, {Name: "subtitle"}, {Name: "institution"}, {Name: "date"},
		{Name: "type"}, {Name: "icon_type"}, {Name: "color"},
		{Name: "display_order", Numeric: true},
	},
	content.KindSocialLinks: {
		{Name: "platform"}, {Name: "url"}, {Name: "icon_type"},
		{Name: "display_order", Numeric: true},
	},
	content.KindSettings: {
		{Name: "site_title"}, {Name: "site_title_alternate"},
		{Name: "site_description"}, {Name: "email"},
	},
}

// FormFields returns the ordered field list for kind.
func FormFields(kind content.Kind) []Field {
	return formFields[kind]
}

func parseIntField(field, raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("field %s must be a whole number", field)
	}
	return value, nil
}

// parsePercentField clamps to [0, 100]; the store itself does not enforce a
// range, the clamp lives at the edit boundary only.
func parsePercentField(field, raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("field %s must be a number", field)
	}
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}
	return value, nil
}

func unknownField(kind content.Kind, field string) error {
	return fmt.Errorf("unknown %s field: %s", kind, field)
}

// The Apply*Fields functions bind string form values onto a record,
// coercing numeric-typed fields. Only the fields present in values are
// touched, so partial edits keep the rest of the draft intact.

func ApplyHeroFields(h *models.HeroContent, values map[string]string) error {
	for field, raw := range values {
		switch field {
		case "headline":
			h.Headline = raw
		case "subheadline":
			h.Subheadline = raw
		case "description":
			h.Description = raw
		case "cta_text":
			h.CtaText = raw
		case "cta_button_text":
			h.CtaButtonText = raw
		default:
			return unknownField(content.KindHero, field)
		}
	}
	return nil
}

func ApplyAboutFields(a *models.AboutContent, values map[string]string) error {
	for field, raw := range values {
		switch field {
		case "summary":
			a.Summary = raw
		case "approach":
			a.Approach = raw
		case "experience_years":
			value, err := parseIntField(field, raw)
			if err != nil {
				return err
			}
			a.ExperienceYears = value
		case "tests_written":
			value, err := parseIntField(field, raw)
			if err != nil {
				return err
			}
			a.TestsWritten = value
		case "bugs_found":
			value, err := parseIntField(field, raw)
			if err != nil {
				return err
			}
			a.BugsFound = value
		case "success_rate":
			value, err := parsePercentField(field, raw)
			if err != nil {
				return err
			}
			a.SuccessRate = value
		case "test_coverage":
			value, err := parsePercentField(field, raw)
			if err != nil {
				return err
			}
			a.TestCoverage = value
		case "projects_delivered":
			value, err := parseIntField(field, raw)
			if err != nil {
				return err
			}
			a.ProjectsDelivered = value
		default:
			return unknownField(content.KindAbout, field)
		}
	}
	return nil
}

func ApplySettingsFields(s *models.PortfolioSettings, values map[string]string) error {
	for field, raw := range values {
		switch field {
		case "site_title":
			s.SiteTitle = raw
		case "site_title_alternate":
			s.SiteTitleAlternate = raw
		case "site_description":
			s.SiteDescription = raw
		case "email":
			s.Email = raw
		default:
			return unknownField(content.KindSettings, field)
		}
	}
	return nil
}

func ApplySkillFields(s *models.Skill, values map[string]string) error {
	for field, raw := range values {
		switch field {
		case "name":
			s.Name = raw
		case "icon_type":
			s.IconType = raw
		case "color":
			s.Color = raw
		case "display_order":
			value, err := parseIntField(field, raw)
			if err != nil {
				return err
			}
			s.DisplayOrder = value
		default:
			return unknownField(content.KindSkills, field)
		}
	}
	return nil
}

func ApplyTechStackFields(t *models.TechStack, values map[string]string) error {
	for field, raw := range values {
		switch field {
		case "name":
			t.Name = raw
		default:
			return unknownField(content.KindTechStack, field)
		}
	}
	return nil
}

func ApplyAchievementFields(a *models.Achievement, values map[string]string) error {
	for field, raw := range values {
		switch field {
		case "title":
			a.Title = raw
		case "metric":
			a.Metric = raw
		case "description":
			a.Description = raw
		case "status":
			a.Status = raw
		case "icon_type":
			a.IconType = raw
		case "color":
			a.Color = raw
		case "display_order":
			value, err := parseIntField(field, raw)
			if err != nil {
				return err
			}
			a.DisplayOrder = value
		default:
			return unknownField(content.KindAchievements, field)
		}
	}
	return nil
}

func ApplyEducationFields(e *models.Education, values map[string]string) error {
	for field, raw := range values {
		switch field {
		case "title":
			e.Title = raw
		case "subtitle":
			e.Subtitle = raw
		case "institution":
			e.Institution = raw
		case "date":
			e.Date = raw
		case "type":
			e.Type = raw
		case "version":
			e.Version = raw
		case "icon_type":
			e.IconType = raw
		case "color":
			e.Color = raw
		case "display_order":
			value, err := parseIntField(field, raw)
			if err != nil {
				return err
			}
			e.DisplayOrder = value
		default:
			return unknownField(content.KindEducation, field)
		}
	}
	return nil
}

func ApplySocialLinkFields(l *models.SocialLink, values map[string]string) error {
	for field, raw := range values {
		switch field {
		case "platform":
			l.Platform = raw
		case "url":
			l.URL = raw
		case "icon_type":
			l.IconType = raw
		case "display_order":
			value, err := parseIntField(field, raw)
			if err != nil {
				return err
			}
			l.DisplayOrder = value
		default:
			return unknownField(content.KindSocialLinks, field)
		}
	}
	return nil
}

func ApplyProjectFields(p *models.QAProject, values map[string]string) error {
	for field, raw := range values {
		switch field {
		case "ticket_id":
			p.TicketID = raw
		case "name":
			p.Name = raw
		case "priority":
			p.Priority = raw
		case "status":
			p.Status = raw
		case "role":
			p.Role = raw
		case "outcome":
			p.Outcome = raw
		case "icon_type":
			p.IconType = raw
		case "color":
			p.Color = raw
		default:
			return unknownField(content.KindProjects, field)
		}
	}
	return nil
}
