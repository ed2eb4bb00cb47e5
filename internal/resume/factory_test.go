package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	doc := New(Options{})

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "Untitled Resume", doc.Title)
	assert.Equal(t, doc.CreatedAt, doc.UpdatedAt)
	assert.Equal(t, SectionBasic, doc.ActiveSection)
	assert.Empty(t, doc.Education)
	assert.Empty(t, doc.Experience)
	assert.Empty(t, doc.Projects)
	assert.Empty(t, doc.SkillContent)
	assert.NotNil(t, doc.CustomData)
	assert.Empty(t, doc.CustomData)
}

func TestNewDefaultMenuSections(t *testing.T) {
	doc := New(Options{})

	require.Len(t, doc.MenuSections, 5)
	wantIDs := []string{SectionBasic, SectionExperience, SectionEducation, SectionProjects, SectionSkills}
	for i, section := range doc.MenuSections {
		assert.Equal(t, wantIDs[i], section.ID)
		assert.Equal(t, i, section.Order)
		assert.True(t, section.Enabled)
		assert.NotEmpty(t, section.Title)
	}
}

func TestNewMergesBasicOverDefaults(t *testing.T) {
	doc := New(Options{
		Basic: &BasicInfo{Name: "李四", Email: "lisi@example.com"},
	})

	assert.Equal(t, "李四", doc.Basic.Name)
	assert.Equal(t, "lisi@example.com", doc.Basic.Email)
	// 未覆盖的默认值保留
	assert.Equal(t, "left", doc.Basic.Layout)
	require.NotNil(t, doc.Basic.PhotoConfig)
	assert.Equal(t, 90, doc.Basic.PhotoConfig.Width)
	assert.NotEmpty(t, doc.Basic.FieldOrder)
}

func TestNewMergesGlobalSettings(t *testing.T) {
	doc := New(Options{
		GlobalSettings: &GlobalSettingsOverride{ThemeColor: "#0047AB", BaseFontSize: 16, CenterSubtitle: boolPtr(true)},
	})

	assert.Equal(t, "#0047AB", doc.GlobalSettings.ThemeColor)
	assert.Equal(t, 16, doc.GlobalSettings.BaseFontSize)
	assert.Equal(t, DefaultLineHeight, doc.GlobalSettings.LineHeight)
	assert.Equal(t, DefaultSectionSpacing, doc.GlobalSettings.SectionSpacing)
	assert.True(t, doc.GlobalSettings.CenterSubtitle)
}

func TestNewPartialGlobalSettingsKeepsBooleanDefaults(t *testing.T) {
	// 只覆盖主题色时，未指定的布尔键保持默认
	doc := New(Options{
		GlobalSettings: &GlobalSettingsOverride{ThemeColor: "#ff0000"},
	})

	assert.Equal(t, "#ff0000", doc.GlobalSettings.ThemeColor)
	assert.True(t, doc.GlobalSettings.CenterSubtitle)
	assert.False(t, doc.GlobalSettings.UseIconMode)
}

func TestNewExplicitFalseBooleanOverrides(t *testing.T) {
	doc := New(Options{
		GlobalSettings: &GlobalSettingsOverride{
			CenterSubtitle: boolPtr(false),
			UseIconMode:    boolPtr(true),
		},
	})

	assert.False(t, doc.GlobalSettings.CenterSubtitle)
	assert.True(t, doc.GlobalSettings.UseIconMode)
}

func TestNewDoesNotValidateCallerData(t *testing.T) {
	// 工厂不做字段校验：畸形数据原样带入
	doc := New(Options{
		Education: []Education{{School: "", StartDate: "not-a-date"}},
	})

	require.Len(t, doc.Education, 1)
	assert.Equal(t, "not-a-date", doc.Education[0].StartDate)
}
