package content

import (
	"context"

	"portfolio-backend-go/internal/models"
)

// Source is the repository boundary between the UI layers and storage.
// Every method is safe to call with an empty store and never surfaces a
// transport error: failures collapse to nil, an empty slice, or false,
// with the underlying cause written to the log.
type Source interface {
	// Singleton reads. nil means "no row yet", which is a normal state.
	Hero(ctx context.Context) *models.HeroContent
	About(ctx context.Context) *models.AboutContent
	Settings(ctx context.Context) *models.PortfolioSettings

	// Collection reads, ordered for rendering. Empty on error or no rows.
	Skills(ctx context.Context) []models.Skill
	TechStack(ctx context.Context) []models.TechStack
	Achievements(ctx context.Context) []models.Achievement
	EducationEntries(ctx context.Context) []models.Education
	SocialLinks(ctx context.Context) []models.SocialLink
	Projects(ctx context.Context) []models.QAProject

	// Singleton writes: update the one row if present, insert it otherwise.
	UpdateHero(ctx context.Context, in models.HeroContent) *models.HeroContent
	UpdateAbout(ctx context.Context, in models.AboutContent) *models.AboutContent
	UpdateSettings(ctx context.Context, in models.PortfolioSettings) *models.PortfolioSettings

	// Collection writes: empty id inserts with a minted id, otherwise
	// update by id. The returned row is the row as stored.
	UpsertSkill(ctx context.Context, in models.Skill) *models.Skill
	UpsertTechStack(ctx context.Context, in models.TechStack) *models.TechStack
	UpsertAchievement(ctx context.Context, in models.Achievement) *models.Achievement
	UpsertEducation(ctx context.Context, in models.Education) *models.Education
	UpsertSocialLink(ctx context.Context, in models.SocialLink) *models.SocialLink
	UpsertProject(ctx context.Context, in models.QAProject) *models.QAProject

	// Delete removes one row of a collection kind. Deleting an unknown id
	// succeeds; singleton kinds are rejected.
	Delete(ctx context.Context, kind Kind, id string) bool

	// ResetAll deletes every row of one kind, leaving other kinds alone.
	ResetAll(ctx context.Context, kind Kind) bool

	// Batch replacement for the about-screen collections: the given items
	// become the entire collection, in order, with fresh ids.
	ReplaceSkills(ctx context.Context, items []models.Skill) bool
	ReplaceTechStack(ctx context.Context, items []models.TechStack) bool
}
