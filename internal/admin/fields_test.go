package admin

import (
	"testing"

	"portfolio-backend-go/internal/content"
	"portfolio-backend-go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormFieldsTechStackIsNameOnly(t *testing.T) {
	fields := FormFields(content.KindTechStack)
	require.Len(t, fields, 1)
	assert.Equal(t, "name", fields[0].Name)
	assert.False(t, fields[0].Numeric)
}

func TestFormFieldsUnknownKindIsEmpty(t *testing.T) {
	assert.Empty(t, FormFields(content.Kind("bogus")))
}

func TestApplyAboutFieldsCoercion(t *testing.T) {
	about := models.AboutContent{}
	err := ApplyAboutFields(&about, map[string]string{
		"summary":          "text",
		"experience_years": " 7 ",
		"tests_written":    "4200",
	})
	require.NoError(t, err)
	assert.Equal(t, "text", about.Summary)
	assert.Equal(t, 7, about.ExperienceYears)
	assert.Equal(t, 4200, about.TestsWritten)
}

func TestApplyAboutFieldsRejectsNonNumeric(t *testing.T) {
	about := models.AboutContent{ExperienceYears: 5}
	err := ApplyAboutFields(&about, map[string]string{"experience_years": "many"})
	assert.Error(t, err)
	assert.Equal(t, 5, about.ExperienceYears)
}

func TestApplyAboutFieldsClampsPercentRange(t *testing.T) {
	about := models.AboutContent{}
	require.NoError(t, ApplyAboutFields(&about, map[string]string{"success_rate": "120.5"}))
	assert.Equal(t, 100.0, about.SuccessRate)

	require.NoError(t, ApplyAboutFields(&about, map[string]string{"test_coverage": "-10"}))
	assert.Equal(t, 0.0, about.TestCoverage)

	require.NoError(t, ApplyAboutFields(&about, map[string]string{"success_rate": "99.7"}))
	assert.InDelta(t, 99.7, about.SuccessRate, 0.001)
}

func TestApplyTechStackFieldsRejectsExtras(t *testing.T) {
	item := models.TechStack{}
	require.NoError(t, ApplyTechStackFields(&item, map[string]string{"name": "Selenium"}))
	assert.Equal(t, "Selenium", item.Name)

	assert.Error(t, ApplyTechStackFields(&item, map[string]string{"display_order": "1"}))
	assert.Error(t, ApplyTechStackFields(&item, map[string]string{"icon_type": "Zap"}))
}

func TestApplyHeroFieldsUnknownField(t *testing.T) {
	hero := models.HeroContent{}
	err := ApplyHeroFields(&hero, map[string]string{"tagline": "x"})
	assert.Error(t, err)
}

func TestApplySkillFieldsPartialEdit(t *testing.T) {
	skill := models.Skill{Name: "old", IconType: "Bug", Color: "red", DisplayOrder: 2}
	require.NoError(t, ApplySkillFields(&skill, map[string]string{"name": "new"}))
	assert.Equal(t, "new", skill.Name)
	assert.Equal(t, "Bug", skill.IconType)
	assert.Equal(t, 2, skill.DisplayOrder)
}

func TestApplyProjectFieldsAcceptsPriority(t *testing.T) {
	project := models.QAProject{}
	require.NoError(t, ApplyProjectFields(&project, map[string]string{
		"ticket_id": "TC-010",
		"priority":  models.PriorityCritical,
		"status":    models.StatusInProgress,
	}))
	assert.Equal(t, "TC-010", project.TicketID)
	assert.Equal(t, "CRITICAL", project.Priority)
	assert.Equal(t, "IN_PROGRESS", project.Status)
}
