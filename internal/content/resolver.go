package content

import (
	"context"

	"portfolio-backend-go/internal/models"

	"golang.org/x/sync/errgroup"
)

// SourceTag marks whether a resolved piece came from storage or from the
// built-in fallback. "Not yet loaded" exists only while a Resolve call is
// in flight; callers always receive a fully resolved view.
type SourceTag string

const (
	SourceStore   SourceTag = "store"
	SourceDefault SourceTag = "default"
)

// Resolver turns repository reads into render-ready section views, filling
// gaps with default content. It holds no cache: every call reads fresh.
type Resolver struct {
	source Source
}

func NewResolver(source Source) *Resolver {
	return &Resolver{source: source}
}

type HeroView struct {
	Hero   models.HeroContent `json:"hero"`
	Source SourceTag          `json:"source"`
}

type AboutView struct {
	About           models.AboutContent `json:"about"`
	AboutSource     SourceTag           `json:"about_source"`
	Skills          []models.Skill      `json:"skills"`
	SkillsSource    SourceTag           `json:"skills_source"`
	TechStack       []models.TechStack  `json:"tech_stack"`
	TechStackSource SourceTag           `json:"tech_stack_source"`
}

type AchievementsView struct {
	Achievements []models.Achievement `json:"achievements"`
	Source       SourceTag            `json:"source"`
	About        models.AboutContent  `json:"about"`
	AboutSource  SourceTag            `json:"about_source"`
}

type ProjectsView struct {
	Projects []models.QAProject `json:"projects"`
	Source   SourceTag          `json:"source"`
}

type EducationView struct {
	Timeline []models.Education `json:"timeline"`
	Source   SourceTag          `json:"source"`
}

type FooterView struct {
	SocialLinks    []models.SocialLink      `json:"social_links"`
	SocialSource   SourceTag                `json:"social_source"`
	Settings       models.PortfolioSettings `json:"settings"`
	SettingsSource SourceTag                `json:"settings_source"`
}

type SettingsView struct {
	Settings models.PortfolioSettings `json:"settings"`
	Source   SourceTag                `json:"source"`
}

func (r *Resolver) Hero(ctx context.Context) HeroView {
	if row := r.source.Hero(ctx); row != nil {
		return HeroView{Hero: *row, Source: SourceStore}
	}
	return HeroView{Hero: DefaultHero(), Source: SourceDefault}
}

// About needs three entities; they are fetched concurrently and each falls
// back on its own, so one empty or failing piece never blanks the section.
func (r *Resolver) About(ctx context.Context) AboutView {
	var (
		about  *models.AboutContent
		skills []models.Skill
		tech   []models.TechStack
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		about = r.source.About(gctx)
		return nil
	})
	g.Go(func() error {
		skills = r.source.Skills(gctx)
		return nil
	})
	g.Go(func() error {
		tech = r.source.TechStack(gctx)
		return nil
	})
	_ = g.Wait()

	view := AboutView{
		About:           DefaultAbout(),
		AboutSource:     SourceDefault,
		Skills:          DefaultSkills(),
		SkillsSource:    SourceDefault,
		TechStack:       DefaultTechStack(),
		TechStackSource: SourceDefault,
	}
	if about != nil {
		view.About = *about
		view.AboutSource = SourceStore
	}
	if len(skills) > 0 {
		view.Skills = skills
		view.SkillsSource = SourceStore
	}
	if len(tech) > 0 {
		view.TechStack = tech
		view.TechStackSource = SourceStore
	}
	return view
}

func (r *Resolver) Achievements(ctx context.Context) AchievementsView {
	var (
		items []models.Achievement
		about *models.AboutContent
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items = r.source.Achievements(gctx)
		return nil
	})
	g.Go(func() error {
		about = r.source.About(gctx)
		return nil
	})
	_ = g.Wait()

	view := AchievementsView{
		Achievements: DefaultAchievements(),
		Source:       SourceDefault,
		About:        DefaultAbout(),
		AboutSource:  SourceDefault,
	}
	if len(items) > 0 {
		view.Achievements = items
		view.Source = SourceStore
	}
	if about != nil {
		view.About = *about
		view.AboutSource = SourceStore
	}
	return view
}

func (r *Resolver) Projects(ctx context.Context) ProjectsView {
	if items := r.source.Projects(ctx); len(items) > 0 {
		return ProjectsView{Projects: items, Source: SourceStore}
	}
	return ProjectsView{Projects: DefaultProjects(), Source: SourceDefault}
}

func (r *Resolver) Education(ctx context.Context) EducationView {
	if items := r.source.EducationEntries(ctx); len(items) > 0 {
		return EducationView{Timeline: items, Source: SourceStore}
	}
	return EducationView{Timeline: DefaultEducation(), Source: SourceDefault}
}

func (r *Resolver) Footer(ctx context.Context) FooterView {
	var (
		links    []models.SocialLink
		settings *models.PortfolioSettings
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		links = r.source.SocialLinks(gctx)
		return nil
	})
	g.Go(func() error {
		settings = r.source.Settings(gctx)
		return nil
	})
	_ = g.Wait()

	view := FooterView{
		SocialLinks:    DefaultSocialLinks(),
		SocialSource:   SourceDefault,
		Settings:       DefaultSettings(),
		SettingsSource: SourceDefault,
	}
	if len(links) > 0 {
		view.SocialLinks = links
		view.SocialSource = SourceStore
	}
	if settings != nil {
		view.Settings = *settings
		view.SettingsSource = SourceStore
	}
	return view
}

func (r *Resolver) SiteSettings(ctx context.Context) SettingsView {
	if row := r.source.Settings(ctx); row != nil {
		return SettingsView{Settings: *row, Source: SourceStore}
	}
	return SettingsView{Settings: DefaultSettings(), Source: SourceDefault}
}
