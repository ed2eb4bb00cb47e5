package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumekit/internal/resume"
)

func boolPtr(v bool) *bool { return &v }

func testSettings() resume.ResolvedSettings {
	return resume.ResolveSettings(resume.GlobalSettings{})
}

func TestEducationSectionEmptyListRendersNothing(t *testing.T) {
	out := EducationSection(nil, testSettings(), TemplateClassic, true)
	assert.Empty(t, string(out))

	out = EducationSection([]resume.Education{}, testSettings(), TemplateClassic, true)
	assert.Empty(t, string(out))
}

func TestEducationSectionFiltersInvisibleEntries(t *testing.T) {
	items := []resume.Education{
		{School: "清华大学", Visible: boolPtr(false)},
		{School: "北京大学"},
		{School: "复旦大学", Visible: boolPtr(true)},
	}
	out := string(EducationSection(items, testSettings(), TemplateClassic, true))

	assert.NotContains(t, out, "清华大学")
	assert.Contains(t, out, "北京大学")
	assert.Contains(t, out, "复旦大学")
}

func TestEducationSectionAllInvisibleRendersNothing(t *testing.T) {
	items := []resume.Education{
		{School: "清华大学", Visible: boolPtr(false)},
	}
	out := EducationSection(items, testSettings(), TemplateClassic, true)
	assert.Empty(t, string(out))
}

func TestEducationSectionDateFormatting(t *testing.T) {
	items := []resume.Education{
		{School: "浙江大学", StartDate: "2018-09-01", EndDate: "2022-06-30"},
	}
	out := string(EducationSection(items, testSettings(), TemplateClassic, true))

	assert.Contains(t, out, "2018/9/1 - 2022/6/30")
}

func TestEducationSectionMalformedDateShownRaw(t *testing.T) {
	items := []resume.Education{
		{School: "浙江大学", StartDate: "大一", EndDate: "至今"},
	}
	out := string(EducationSection(items, testSettings(), TemplateClassic, true))

	assert.Contains(t, out, "大一 - 至今")
}

func TestEducationSectionSubtitleJoin(t *testing.T) {
	items := []resume.Education{
		{School: "浙江大学", Major: "计算机科学", Degree: "本科", GPA: "3.8"},
	}
	out := string(EducationSection(items, testSettings(), TemplateClassic, true))

	assert.Contains(t, out, "计算机科学 · 本科 · GPA 3.8")
}

func TestEducationSectionGridColumns(t *testing.T) {
	items := []resume.Education{{School: "浙江大学"}}

	centered := resume.ResolveSettings(resume.GlobalSettings{CenterSubtitle: true})
	out := string(EducationSection(items, centered, TemplateClassic, true))
	assert.Contains(t, out, "grid-template-columns: 1fr 1fr auto")

	out = string(EducationSection(items, testSettings(), TemplateClassic, true))
	assert.Contains(t, out, "grid-template-columns: 1fr auto")
}

func TestEducationSectionTitleSuppressed(t *testing.T) {
	items := []resume.Education{{School: "浙江大学"}}

	withTitle := string(EducationSection(items, testSettings(), TemplateClassic, true))
	assert.Contains(t, withTitle, "教育背景")

	withoutTitle := string(EducationSection(items, testSettings(), TemplateClassic, false))
	assert.NotContains(t, withoutTitle, "教育背景")
}

func TestExperienceSectionVisibility(t *testing.T) {
	items := []resume.Experience{
		{Company: "字节跳动", Position: "后端工程师", Date: "2020 - 2023"},
		{Company: "隐藏公司", Visible: boolPtr(false)},
	}
	out := string(ExperienceSection(items, testSettings(), TemplateClassic, true))

	assert.Contains(t, out, "工作经验")
	assert.Contains(t, out, "字节跳动")
	assert.Contains(t, out, "后端工程师")
	assert.Contains(t, out, "2020 - 2023")
	assert.NotContains(t, out, "隐藏公司")
}

func TestExperienceSectionSanitizesDetails(t *testing.T) {
	items := []resume.Experience{
		{Company: "某公司", Details: `<p>负责核心模块</p><script>alert(1)</script>`},
	}
	out := string(ExperienceSection(items, testSettings(), TemplateClassic, true))

	assert.Contains(t, out, "<p>负责核心模块</p>")
	assert.NotContains(t, out, "<script>")
}

func TestProjectSectionLinkHostWhenNotCentered(t *testing.T) {
	items := []resume.Project{
		{Name: "开源项目", Role: "维护者", Date: "2023", Link: "https://www.github.com/example/repo"},
	}
	out := string(ProjectSection(items, testSettings(), TemplateClassic, true))

	// 非居中模式：链接列显示裸主机名
	assert.Contains(t, out, ">github.com</a>")
	assert.NotContains(t, out, ">https://www.github.com/example/repo</a>")
	// 角色下移为副标题行
	assert.Contains(t, out, "维护者")
}

func TestProjectSectionCenteredShowsRawLinkBelow(t *testing.T) {
	items := []resume.Project{
		{Name: "开源项目", Role: "维护者", Date: "2023", Link: "https://www.github.com/example/repo"},
	}
	centered := resume.ResolveSettings(resume.GlobalSettings{CenterSubtitle: true})
	out := string(ProjectSection(items, centered, TemplateClassic, true))

	// 居中模式：主行三列（名称、角色、日期），完整链接独立成行
	assert.Contains(t, out, "grid-template-columns: repeat(3, minmax(0, 1fr))")
	assert.Contains(t, out, ">https://www.github.com/example/repo</a>")
	require.Equal(t, 1, strings.Count(out, "维护者"), "副标题不应重复渲染")
}

func TestProjectSectionAlwaysThreeColumns(t *testing.T) {
	items := []resume.Project{{Name: "无链接项目", Date: "2023"}}
	out := string(ProjectSection(items, testSettings(), TemplateClassic, true))

	assert.Contains(t, out, "grid-template-columns: repeat(3, minmax(0, 1fr))")
}

func TestProjectSectionLinkWithoutScheme(t *testing.T) {
	items := []resume.Project{{Name: "项目", Link: "www.example.com/demo"}}
	out := string(ProjectSection(items, testSettings(), TemplateClassic, true))

	assert.Contains(t, out, `href="https://www.example.com/demo"`)
	assert.Contains(t, out, ">example.com</a>")
}

func TestSkillSectionEmptyContentRendersNothing(t *testing.T) {
	assert.Empty(t, string(SkillSection("", testSettings(), TemplateClassic, true)))
	assert.Empty(t, string(SkillSection("   ", testSettings(), TemplateClassic, true)))
}

func TestSkillSectionRendersRichText(t *testing.T) {
	out := string(SkillSection("<ul><li>Go</li><li>PostgreSQL</li></ul>", testSettings(), TemplateClassic, true))

	assert.Contains(t, out, "技能")
	assert.Contains(t, out, "<li>Go</li>")
}

func TestCustomSectionVisibilityRule(t *testing.T) {
	items := []resume.CustomItem{
		{Title: "获奖经历", Visible: true},
		{Title: "不可见条目", Visible: false},
		{Title: "", Description: "", Visible: true},
		{Title: "", Description: "<p>仅有描述</p>", Visible: true},
	}
	out := string(CustomSection("荣誉", items, testSettings(), TemplateClassic, true))

	assert.Contains(t, out, "获奖经历")
	assert.NotContains(t, out, "不可见条目")
	assert.Contains(t, out, "仅有描述")
}

func TestCustomSectionAllFilteredRendersNothing(t *testing.T) {
	items := []resume.CustomItem{
		{Title: "有标题但不可见", Visible: false},
		{Visible: true},
	}
	out := CustomSection("荣誉", items, testSettings(), TemplateClassic, true)
	assert.Empty(t, string(out))
}

func TestCustomSectionGridColumns(t *testing.T) {
	items := []resume.CustomItem{{Title: "条目", Subtitle: "副标题", Visible: true}}

	out := string(CustomSection("荣誉", items, testSettings(), TemplateClassic, true))
	assert.Contains(t, out, "repeat(2, minmax(0, 1fr))")

	centered := resume.ResolveSettings(resume.GlobalSettings{CenterSubtitle: true})
	out = string(CustomSection("荣誉", items, centered, TemplateClassic, true))
	assert.Contains(t, out, "repeat(3, minmax(0, 1fr))")
}

func TestSectionTitleVariants(t *testing.T) {
	s := testSettings()

	classic := string(SectionTitle("教育背景", s, TemplateClassic))
	assert.Contains(t, classic, "border-bottom: 1px solid #000000")
	assert.Contains(t, classic, "font-size: 18px")
	assert.Contains(t, classic, "margin-bottom: 4px")

	modern := string(SectionTitle("教育背景", s, TemplateModern))
	assert.Contains(t, modern, "text-transform: uppercase")

	leftRight := string(SectionTitle("教育背景", s, TemplateLeftRight))
	assert.Contains(t, leftRight, "border-left: 3px solid #000000")

	// 未知布局回落到 classic 处理
	unknown := string(SectionTitle("教育背景", s, TemplateID("brutalist")))
	assert.Equal(t, classic, unknown)
}
