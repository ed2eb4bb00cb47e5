package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumekit/internal/resume"
)

func sampleDocument() *resume.Document {
	doc := resume.New(resume.Options{
		Title: "示例简历",
		Basic: &resume.BasicInfo{Name: "张三", Title: "后端工程师", Email: "zhangsan@example.com"},
	})
	doc.Experience = []resume.Experience{
		{ID: "exp-1", Company: "示例科技", Position: "工程师", Date: "2020 - 至今", Details: "<p>负责核心服务</p>"},
	}
	doc.Education = []resume.Education{
		{ID: "edu-1", School: "示例大学", Major: "计算机", Degree: "本科", StartDate: "2016-09-01", EndDate: "2020-06-30"},
	}
	doc.Projects = []resume.Project{
		{ID: "proj-1", Name: "开源项目", Role: "维护者", Date: "2023", Description: "<p>简历渲染服务</p>"},
	}
	doc.SkillContent = "<ul><li>Go</li><li>PostgreSQL</li></ul>"
	return doc
}

func TestPreviewNilDocument(t *testing.T) {
	assert.Empty(t, string(Preview(nil, TemplateClassic)))
}

func TestPreviewUnknownTemplateEqualsClassic(t *testing.T) {
	doc := sampleDocument()
	classic := Preview(doc, TemplateClassic)
	unknown := Preview(doc, ParseTemplateID("does-not-exist"))
	assert.Equal(t, classic, unknown)
}

func TestPreviewClassicContainsAllSections(t *testing.T) {
	out := string(Preview(sampleDocument(), TemplateClassic))

	assert.Contains(t, out, "张三")
	assert.Contains(t, out, "示例科技")
	assert.Contains(t, out, "示例大学")
	assert.Contains(t, out, "开源项目")
	assert.Contains(t, out, "Go")
	// 默认中文标题
	assert.Contains(t, out, "工作经验")
	assert.Contains(t, out, "教育背景")
	assert.Contains(t, out, "项目经验")
	assert.Contains(t, out, "技能")
}

func TestPreviewRespectsSectionOrder(t *testing.T) {
	doc := sampleDocument()
	for i := range doc.MenuSections {
		switch doc.MenuSections[i].ID {
		case resume.SectionEducation:
			doc.MenuSections[i].Order = 1
		case resume.SectionExperience:
			doc.MenuSections[i].Order = 2
		}
	}
	out := string(Preview(doc, TemplateClassic))

	edu := strings.Index(out, "示例大学")
	exp := strings.Index(out, "示例科技")
	require.GreaterOrEqual(t, edu, 0)
	require.GreaterOrEqual(t, exp, 0)
	assert.Less(t, edu, exp)
}

func TestPreviewEqualOrderKeepsListPosition(t *testing.T) {
	// order 相同的区块按列表原有先后输出（稳定排序）
	doc := sampleDocument()
	for i := range doc.MenuSections {
		switch doc.MenuSections[i].ID {
		case resume.SectionExperience, resume.SectionEducation:
			doc.MenuSections[i].Order = 7
		}
	}
	out := string(Preview(doc, TemplateClassic))

	exp := strings.Index(out, "示例科技")
	edu := strings.Index(out, "示例大学")
	require.GreaterOrEqual(t, exp, 0)
	require.GreaterOrEqual(t, edu, 0)
	// 默认菜单里 experience 排在 education 之前
	assert.Less(t, exp, edu)
}

func TestPreviewSkipsDisabledSections(t *testing.T) {
	doc := sampleDocument()
	for i := range doc.MenuSections {
		if doc.MenuSections[i].ID == resume.SectionProjects {
			doc.MenuSections[i].Enabled = false
		}
	}
	out := string(Preview(doc, TemplateClassic))

	assert.NotContains(t, out, "开源项目")
	assert.Contains(t, out, "示例科技")
}

func TestPreviewSkipsEmptySkills(t *testing.T) {
	doc := sampleDocument()
	doc.SkillContent = "   "
	out := string(Preview(doc, TemplateClassic))

	assert.NotContains(t, out, "技能")
}

func TestPreviewCustomSection(t *testing.T) {
	doc := sampleDocument()
	doc.MenuSections = append(doc.MenuSections, resume.MenuSection{
		ID: "custom-1", Title: "获奖经历", Icon: "Award", Enabled: true, Order: 5,
	})
	doc.CustomData = map[string][]resume.CustomItem{
		"custom-1": {{ID: "c1", Title: "一等奖", Visible: true}},
	}
	out := string(Preview(doc, TemplateClassic))

	assert.Contains(t, out, "获奖经历")
	assert.Contains(t, out, "一等奖")
}

func TestPreviewUnknownSectionSilentlyEmpty(t *testing.T) {
	doc := sampleDocument()
	doc.MenuSections = append(doc.MenuSections, resume.MenuSection{
		ID: "ghost", Title: "幽灵区块", Enabled: true, Order: 9,
	})
	out := string(Preview(doc, TemplateClassic))

	assert.NotContains(t, out, "幽灵区块")
}

func TestPreviewModernSidebar(t *testing.T) {
	doc := sampleDocument()
	doc.GlobalSettings.ThemeColor = "#18181b"
	out := string(Preview(doc, TemplateModern))

	assert.Contains(t, out, "grid-template-columns: repeat(3, minmax(0, 1fr))")
	assert.Contains(t, out, "grid-column: span 1")
	assert.Contains(t, out, "grid-column: span 2")
	assert.Contains(t, out, "background-color: #18181b")
	// basic 进侧栏，侧栏用白字
	assert.Contains(t, out, "color: #ffffff")
	assert.Contains(t, out, "张三")
}

func TestPreviewTimelineSuppressesInnerTitles(t *testing.T) {
	doc := sampleDocument()
	out := string(Preview(doc, TemplateTimeline))

	// 标题只出现一次：时间轴节点上，而非区块内部
	assert.Equal(t, 1, strings.Count(out, "工作经验"))
	assert.Equal(t, 1, strings.Count(out, "教育背景"))
	assert.Contains(t, out, "width: 12px")
	assert.Contains(t, out, "background-color: #e5e7eb")
}

func TestPreviewTimelineBasicWithoutMarker(t *testing.T) {
	doc := sampleDocument()
	out := string(Preview(doc, TemplateTimeline))

	// basic 区块不带时间轴节点，整页只有 4 个节点
	assert.Equal(t, 4, strings.Count(out, `left: -6px`))
	assert.Contains(t, out, "张三")
}

func TestPreviewEmptyFactoryDocument(t *testing.T) {
	doc := resume.New(resume.Options{})
	out := string(Preview(doc, TemplateClassic))

	// 没有内容的区块全部输出为空，只剩下 basic 的外壳
	assert.NotContains(t, out, "工作经验")
	assert.NotContains(t, out, "教育背景")
	assert.NotContains(t, out, "项目经验")
	assert.Contains(t, out, "resume-preview")
}

func TestPreviewAppliesResolvedSettings(t *testing.T) {
	doc := sampleDocument()
	doc.GlobalSettings = resume.GlobalSettings{BaseFontSize: 16, ThemeColor: "#2563eb"}
	out := string(Preview(doc, TemplateClassic))

	assert.Contains(t, out, "font-size: 16px")
	// 其余设置回落默认
	assert.Contains(t, out, "line-height: 1.6")
	assert.Contains(t, out, "#2563eb")
}

func TestPreviewFontFamily(t *testing.T) {
	doc := sampleDocument()
	doc.GlobalSettings.FontFamily = "Noto Sans SC"
	out := string(Preview(doc, TemplateClassic))

	assert.Contains(t, out, "font-family: Noto Sans SC")
}
