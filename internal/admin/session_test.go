package admin

import (
	"context"
	"testing"
	"time"

	"portfolio-backend-go/internal/content"
	"portfolio-backend-go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSource is a configurable in-memory Source. Write behavior is driven
// by function fields so each test dictates success or failure; every call
// is recorded for order assertions.
type stubSource struct {
	calls []string

	hero         *models.HeroContent
	about        *models.AboutContent
	settings     *models.PortfolioSettings
	skills       []models.Skill
	techStack    []models.TechStack
	achievements []models.Achievement
	education    []models.Education
	socialLinks  []models.SocialLink
	projects     []models.QAProject

	updateHeroFn     func(models.HeroContent) *models.HeroContent
	updateAboutFn    func(models.AboutContent) *models.AboutContent
	updateSettingsFn func(models.PortfolioSettings) *models.PortfolioSettings
	resetAllFn       func(content.Kind) bool
	replaceSkillsFn  func([]models.Skill) bool
	replaceTechFn    func([]models.TechStack) bool
}

func (s *stubSource) record(name string) {
	s.calls = append(s.calls, name)
}

func (s *stubSource) Hero(context.Context) *models.HeroContent   { return s.hero }
func (s *stubSource) About(context.Context) *models.AboutContent { return s.about }
func (s *stubSource) Settings(context.Context) *models.PortfolioSettings {
	return s.settings
}
func (s *stubSource) Skills(context.Context) []models.Skill        { return s.skills }
func (s *stubSource) TechStack(context.Context) []models.TechStack { return s.techStack }
func (s *stubSource) Achievements(context.Context) []models.Achievement {
	return s.achievements
}
func (s *stubSource) EducationEntries(context.Context) []models.Education {
	return s.education
}
func (s *stubSource) SocialLinks(context.Context) []models.SocialLink {
	return s.socialLinks
}
func (s *stubSource) Projects(context.Context) []models.QAProject { return s.projects }

func (s *stubSource) UpdateHero(_ context.Context, in models.HeroContent) *models.HeroContent {
	s.record("update hero")
	if s.updateHeroFn == nil {
		return nil
	}
	return s.updateHeroFn(in)
}

func (s *stubSource) UpdateAbout(_ context.Context, in models.AboutContent) *models.AboutContent {
	s.record("update about")
	if s.updateAboutFn == nil {
		return nil
	}
	return s.updateAboutFn(in)
}

func (s *stubSource) UpdateSettings(_ context.Context, in models.PortfolioSettings) *models.PortfolioSettings {
	s.record("update settings")
	if s.updateSettingsFn == nil {
		return nil
	}
	return s.updateSettingsFn(in)
}

func (s *stubSource) UpsertSkill(context.Context, models.Skill) *models.Skill { return nil }
func (s *stubSource) UpsertTechStack(context.Context, models.TechStack) *models.TechStack {
	return nil
}
func (s *stubSource) UpsertAchievement(context.Context, models.Achievement) *models.Achievement {
	return nil
}
func (s *stubSource) UpsertEducation(context.Context, models.Education) *models.Education {
	return nil
}
func (s *stubSource) UpsertSocialLink(context.Context, models.SocialLink) *models.SocialLink {
	return nil
}
func (s *stubSource) UpsertProject(context.Context, models.QAProject) *models.QAProject {
	return nil
}
func (s *stubSource) Delete(context.Context, content.Kind, string) bool { return false }

func (s *stubSource) ResetAll(_ context.Context, kind content.Kind) bool {
	s.record("reset " + string(kind))
	if s.resetAllFn == nil {
		return false
	}
	return s.resetAllFn(kind)
}

func (s *stubSource) ReplaceSkills(_ context.Context, items []models.Skill) bool {
	s.record("replace skills")
	if s.replaceSkillsFn == nil {
		return false
	}
	return s.replaceSkillsFn(items)
}

func (s *stubSource) ReplaceTechStack(_ context.Context, items []models.TechStack) bool {
	s.record("replace tech stack")
	if s.replaceTechFn == nil {
		return false
	}
	return s.replaceTechFn(items)
}

func TestLoadAllReplacesDrafts(t *testing.T) {
	source := &stubSource{
		hero:      &models.HeroContent{ID: "h1", Headline: "Stored"},
		skills:    []models.Skill{{ID: "s1", Name: "API Testing"}},
		techStack: []models.TechStack{{ID: "t1", Name: "Postman"}},
	}
	session := NewSession(source)
	session.LoadAll(context.Background())

	drafts := session.Drafts()
	require.NotNil(t, drafts.Hero)
	assert.Equal(t, "Stored", drafts.Hero.Headline)
	require.Len(t, drafts.Skills, 1)
	assert.Equal(t, "API Testing", drafts.Skills[0].Name)
	require.Len(t, drafts.TechStack, 1)
	assert.Nil(t, drafts.About)
}

func TestEditFieldCoercesNumericValues(t *testing.T) {
	session := NewSession(&stubSource{})

	require.NoError(t, session.EditField(content.KindAbout, "experience_years", "12"))
	require.NoError(t, session.EditField(content.KindAbout, "summary", "hello"))

	drafts := session.Drafts()
	require.NotNil(t, drafts.About)
	assert.Equal(t, 12, drafts.About.ExperienceYears)
	assert.Equal(t, "hello", drafts.About.Summary)
}

func TestEditFieldClampsPercentages(t *testing.T) {
	session := NewSession(&stubSource{})

	require.NoError(t, session.EditField(content.KindAbout, "success_rate", "150"))
	require.NoError(t, session.EditField(content.KindAbout, "test_coverage", "-3"))

	drafts := session.Drafts()
	require.NotNil(t, drafts.About)
	assert.Equal(t, 100.0, drafts.About.SuccessRate)
	assert.Equal(t, 0.0, drafts.About.TestCoverage)
}

func TestEditFieldsRejectsWholePayloadOnBadField(t *testing.T) {
	session := NewSession(&stubSource{})
	require.NoError(t, session.EditField(content.KindAbout, "summary", "original"))

	err := session.EditFields(content.KindAbout, map[string]string{
		"summary":          "changed",
		"experience_years": "not a number",
	})
	require.Error(t, err)

	// no field from the rejected payload may land in the draft
	drafts := session.Drafts()
	require.NotNil(t, drafts.About)
	assert.Equal(t, "original", drafts.About.Summary)
	assert.Zero(t, drafts.About.ExperienceYears)
}

func TestEditFieldRejectsBadInputWithoutIO(t *testing.T) {
	source := &stubSource{}
	session := NewSession(source)

	assert.Error(t, session.EditField(content.KindAbout, "tests_written", "lots"))
	assert.Error(t, session.EditField(content.KindHero, "no_such_field", "x"))
	assert.Error(t, session.EditField(content.KindSkills, "name", "x"))
	assert.Empty(t, source.calls)
}

func TestCommitSingletonSuccess(t *testing.T) {
	source := &stubSource{
		updateHeroFn: func(in models.HeroContent) *models.HeroContent {
			in.ID = "hero-1"
			return &in
		},
	}
	session := NewSession(source)
	require.NoError(t, session.EditField(content.KindHero, "headline", "Updated"))

	require.NoError(t, session.CommitSingleton(context.Background(), content.KindHero))

	drafts := session.Drafts()
	require.NotNil(t, drafts.Hero)
	assert.Equal(t, "hero-1", drafts.Hero.ID)
	assert.Equal(t, "Updated", drafts.Hero.Headline)

	notice := session.Notice()
	require.NotNil(t, notice)
	assert.Equal(t, NoticeSuccess, notice.Kind)
	assert.Equal(t, "Changes saved and deployed successfully!", notice.Message)
	assert.False(t, session.Saving())
}

func TestCommitSingletonFailureKeepsDraft(t *testing.T) {
	session := NewSession(&stubSource{})
	require.NoError(t, session.EditField(content.KindHero, "headline", "Unsaved edit"))

	err := session.CommitSingleton(context.Background(), content.KindHero)
	assert.ErrorIs(t, err, ErrSaveFailed)

	drafts := session.Drafts()
	require.NotNil(t, drafts.Hero)
	assert.Equal(t, "Unsaved edit", drafts.Hero.Headline)

	notice := session.Notice()
	require.NotNil(t, notice)
	assert.Equal(t, NoticeError, notice.Kind)
	assert.Equal(t, "Critical failure: Synchronization error.", notice.Message)
}

func TestCommitSingletonRejectsCollections(t *testing.T) {
	session := NewSession(&stubSource{})
	assert.Error(t, session.CommitSingleton(context.Background(), content.KindSkills))
}

func TestNoticeAutoDismisses(t *testing.T) {
	source := &stubSource{
		updateHeroFn: func(in models.HeroContent) *models.HeroContent { return &in },
	}
	session := NewSession(source)
	session.SetNoticeTTL(20 * time.Millisecond)

	require.NoError(t, session.CommitSingleton(context.Background(), content.KindHero))
	require.NotNil(t, session.Notice())

	assert.Eventually(t, func() bool {
		return session.Notice() == nil
	}, time.Second, 10*time.Millisecond)
}

func TestResetEntityRequiresConfirmation(t *testing.T) {
	source := &stubSource{}
	session := NewSession(source)

	err := session.ResetEntity(context.Background(), content.KindSkills, false)
	assert.ErrorIs(t, err, ErrNotConfirmed)
	assert.Empty(t, source.calls)
}

func TestResetEntityReloadsOnSuccess(t *testing.T) {
	source := &stubSource{
		skills:     []models.Skill{{ID: "s1", Name: "stale"}},
		resetAllFn: func(content.Kind) bool { return true },
	}
	session := NewSession(source)
	session.LoadAll(context.Background())
	source.skills = nil

	require.NoError(t, session.ResetEntity(context.Background(), content.KindSkills, true))

	assert.Empty(t, session.Drafts().Skills)
	notice := session.Notice()
	require.NotNil(t, notice)
	assert.Equal(t, NoticeSuccess, notice.Kind)
	assert.Equal(t, "skills reset to defaults.", notice.Message)
}

func TestResetEntityFailureNotice(t *testing.T) {
	session := NewSession(&stubSource{})

	err := session.ResetEntity(context.Background(), content.KindProjects, true)
	assert.ErrorIs(t, err, ErrSaveFailed)

	notice := session.Notice()
	require.NotNil(t, notice)
	assert.Equal(t, NoticeError, notice.Kind)
}

func TestSkillDraftWorkflow(t *testing.T) {
	session := NewSession(&stubSource{})

	items := session.SubmitSkillDraft(models.Skill{Name: "Load Testing"})
	require.Len(t, items, 1)
	assert.NotEmpty(t, items[0].ID)

	// editing the draft replaces it in place
	edited := items[0]
	edited.Name = "Performance Testing"
	items = session.SubmitSkillDraft(edited)
	require.Len(t, items, 1)
	assert.Equal(t, "Performance Testing", items[0].Name)
	assert.Equal(t, edited.ID, items[0].ID)

	items, err := session.RemoveSkillDraft(items[0].ID, true)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestTechStackDraftRemoveNeedsConfirmation(t *testing.T) {
	session := NewSession(&stubSource{})
	items := session.SubmitTechStackDraft(models.TechStack{Name: "Cypress"})
	require.Len(t, items, 1)

	_, err := session.RemoveTechStackDraft(items[0].ID, false)
	assert.ErrorIs(t, err, ErrNotConfirmed)

	kept := session.Drafts().TechStack
	assert.Len(t, kept, 1)
}
