package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmpty_AllSequencesEmpty(t *testing.T) {
	cv := Empty()

	assert.Empty(t, cv.WorkExperience)
	assert.Empty(t, cv.Education)
	assert.Empty(t, cv.Volunteering)
	assert.Empty(t, cv.Skills)
	assert.Empty(t, cv.Languages)
	assert.Empty(t, cv.References)
	assert.Empty(t, cv.SocialMedia)
	assert.Empty(t, cv.Hobbies)
	assert.Empty(t, cv.Projects)
	assert.Equal(t, PersonalInfo{}, cv.PersonalInfo)
}

func TestEmpty_SequencesNonNil(t *testing.T) {
	cv := Empty()

	// nil slices would serialize as null instead of [] and break the
	// tolerant load path on the other side.
	assert.NotNil(t, cv.WorkExperience)
	assert.NotNil(t, cv.Hobbies)
	assert.NotNil(t, cv.Projects)
}

func TestNewID_UniqueAcrossCalls(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		require.NotEmpty(t, id)
		require.False(t, seen[id], "id collision: %s", id)
		seen[id] = true
	}
}

func TestNewWorkExperience_Defaults(t *testing.T) {
	exp := NewWorkExperience()

	assert.NotEmpty(t, exp.ID)
	assert.Equal(t, []string{""}, exp.BulletPoints, "new entries start with one empty bullet slot")
	assert.False(t, exp.IsCurrentJob)
	assert.Empty(t, exp.JobTitle)
}

func TestNewVolunteering_Defaults(t *testing.T) {
	vol := NewVolunteering()

	assert.NotEmpty(t, vol.ID)
	assert.Equal(t, []string{""}, vol.BulletPoints)
	assert.False(t, vol.IsCurrentRole)
}

func TestNewSkill_Defaults(t *testing.T) {
	skill := NewSkill()

	assert.NotEmpty(t, skill.ID)
	assert.Equal(t, 50, skill.Percentage)
	assert.Equal(t, CategoryTechnical, skill.Category)
	assert.Empty(t, skill.Level)
}

func TestNewLanguage_Defaults(t *testing.T) {
	lang := NewLanguage()

	assert.NotEmpty(t, lang.ID)
	assert.Equal(t, ProficiencyConversational, lang.Proficiency)
}

func TestCVData_JSONRoundTrip(t *testing.T) {
	cv := Empty()
	cv.PersonalInfo.FullName = "Ada Lovelace"
	cv.PersonalInfo.Email = "ada@example.com"
	exp := NewWorkExperience()
	exp.JobTitle = "Engineer"
	exp.Company = "Acme"
	exp.BulletPoints = []string{"Shipped X", ""}
	cv.WorkExperience = append(cv.WorkExperience, exp)
	cv.Skills = append(cv.Skills, Skill{ID: NewID(), Name: "Go", Percentage: 80, Level: "Advanced", Category: CategoryTechnical})
	cv.Hobbies = append(cv.Hobbies, "chess")

	data, err := json.Marshal(cv)
	require.NoError(t, err)

	var restored CVData
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, cv, restored)
}

func TestCVData_JSONFieldNames(t *testing.T) {
	cv := Empty()
	cv.PersonalInfo.FullName = "A"
	exp := NewWorkExperience()
	exp.IsCurrentJob = true
	cv.WorkExperience = append(cv.WorkExperience, exp)

	data, err := json.Marshal(cv)
	require.NoError(t, err)

	// Persisted form keeps the original camelCase keys so existing stored
	// documents remain loadable.
	s := string(data)
	assert.Contains(t, s, `"personalInfo"`)
	assert.Contains(t, s, `"fullName"`)
	assert.Contains(t, s, `"workExperience"`)
	assert.Contains(t, s, `"isCurrentJob"`)
	assert.Contains(t, s, `"bulletPoints"`)
	assert.Contains(t, s, `"socialMedia"`)
}

func TestKnownTemplate(t *testing.T) {
	for _, info := range TemplateCatalog {
		assert.True(t, KnownTemplate(info.ID))
	}
	assert.False(t, KnownTemplate("neon"))
	assert.False(t, KnownTemplate(""))
}

func TestTemplateCatalog_TenStyles(t *testing.T) {
	assert.Len(t, TemplateCatalog, 10)
	assert.Equal(t, DefaultTemplate, TemplateCatalog[0].ID)
}
