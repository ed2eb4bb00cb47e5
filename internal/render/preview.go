package render

import (
	"html/template"
	"sort"
	"strings"

	"resumekit/internal/resume"
)

// 固定的中性配色：背景白、正文深灰，主色来自设置。
const (
	colorBackground = "#ffffff"
	colorText       = "#212529"
)

// sortedSections 取启用的区块并按 order 升序稳定排序。
func sortedSections(doc *resume.Document) []resume.MenuSection {
	enabled := make([]resume.MenuSection, 0, len(doc.MenuSections))
	for _, section := range doc.MenuSections {
		if section.Enabled {
			enabled = append(enabled, section)
		}
	}
	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Order < enabled[j].Order
	})
	return enabled
}

// sectionTitleFor 从菜单取区块标题，缺失时回落到区块 id。
func sectionTitleFor(doc *resume.Document, sectionID string) string {
	for _, section := range doc.MenuSections {
		if section.ID == sectionID && section.Title != "" {
			return section.Title
		}
	}
	return sectionID
}

// renderSection 按区块 id 调度到对应渲染器。
// 内置 id 之外的区块在 customData 中查找；都不命中时静默输出空。
func renderSection(doc *resume.Document, sectionID string, s resume.ResolvedSettings, id TemplateID, showTitle bool) template.HTML {
	switch sectionID {
	case resume.SectionBasic:
		return BaseInfo(doc.Basic, s, id)
	case resume.SectionExperience:
		return ExperienceSection(doc.Experience, s, id, showTitle)
	case resume.SectionEducation:
		return EducationSection(doc.Education, s, id, showTitle)
	case resume.SectionSkills:
		if strings.TrimSpace(doc.SkillContent) == "" {
			return ""
		}
		return SkillSection(doc.SkillContent, s, id, showTitle)
	case resume.SectionProjects:
		return ProjectSection(doc.Projects, s, id, showTitle)
	default:
		if items, ok := doc.CustomData[sectionID]; ok {
			return CustomSection(sectionTitleFor(doc, sectionID), items, s, id, showTitle)
		}
		return ""
	}
}

var classicLayoutTpl = mustParse("layout-classic", `<div class="resume-preview" style="display: flex; flex-direction: column; width: 100%; font-size: {{.BaseFontSize}}px; line-height: {{.LineHeight}}; background-color: {{.Background | safeCSS}}; color: {{.Text | safeCSS}}{{if .FontFamily}}; font-family: {{.FontFamily | safeCSS}}{{end}}">{{range .Sections}}<div>{{.}}</div>{{end}}</div>`)

var modernLayoutTpl = mustParse("layout-modern", `<div class="resume-preview" style="display: grid; grid-template-columns: repeat(3, minmax(0, 1fr)); width: 100%; font-size: {{.BaseFontSize}}px; line-height: {{.LineHeight}}{{if .FontFamily}}; font-family: {{.FontFamily | safeCSS}}{{end}}"><div class="sidebar" style="grid-column: span 1; padding: 16px; padding-top: {{.SectionSpacing}}px; background-color: {{.ThemeColor | safeCSS}}; color: #ffffff">{{.Sidebar}}</div><div style="grid-column: span 2; padding: 16px; padding-top: 0; background-color: {{.Background | safeCSS}}; color: {{.Text | safeCSS}}">{{range .Sections}}<div>{{.}}</div>{{end}}</div></div>`)

var timelineLayoutTpl = mustParse("layout-timeline", `<div class="resume-preview" style="display: flex; flex-direction: column; width: 100%; padding-left: 6px; font-size: {{.BaseFontSize}}px; line-height: {{.LineHeight}}; background-color: {{.Background | safeCSS}}; color: {{.Text | safeCSS}}{{if .FontFamily}}; font-family: {{.FontFamily | safeCSS}}{{end}}">{{range .Entries}}{{if .Timeline}}<div class="timeline-section" style="margin-bottom: 16px"><div style="position: relative; padding-left: 24px"><div style="position: absolute; left: 0; top: 8px; height: 100%; width: 2px; background-color: #e5e7eb"></div><div style="position: absolute; left: -6px; top: 8px; width: 12px; height: 12px; border-radius: 9999px; background-color: {{$.ThemeColor | safeCSS}}"></div><div class="font-bold" style="font-weight: bold; margin-bottom: 16px; color: {{$.ThemeColor | safeCSS}}; font-size: {{$.HeaderSize}}px">{{.Title}}</div><div>{{.Content}}</div></div></div>{{else}}<div>{{.Content}}</div>{{end}}{{end}}</div>`)

type layoutView struct {
	BaseFontSize   int
	LineHeight     string
	FontFamily     string
	ThemeColor     string
	Background     string
	Text           string
	SectionSpacing int
	HeaderSize     int
	Sidebar        template.HTML
	Sections       []template.HTML
	Entries        []timelineEntryView
}

type timelineEntryView struct {
	Timeline bool
	Title    string
	Content  template.HTML
}

func newLayoutView(s resume.ResolvedSettings) layoutView {
	return layoutView{
		BaseFontSize:   s.BaseFontSize,
		LineHeight:     formatFloat(s.LineHeight),
		FontFamily:     s.FontFamily,
		ThemeColor:     s.ThemeColor,
		Background:     colorBackground,
		Text:           colorText,
		SectionSpacing: s.SectionSpacing,
		HeaderSize:     s.HeaderSize,
	}
}

func renderClassicLayout(doc *resume.Document, s resume.ResolvedSettings, id TemplateID) template.HTML {
	view := newLayoutView(s)
	for _, section := range sortedSections(doc) {
		view.Sections = append(view.Sections, renderSection(doc, section.ID, s, id, true))
	}
	return execute(classicLayoutTpl, view)
}

// renderModernLayout 把 basic 拆到窄的主题色侧栏，其余区块进主列。
func renderModernLayout(doc *resume.Document, s resume.ResolvedSettings) template.HTML {
	view := newLayoutView(s)
	for _, section := range sortedSections(doc) {
		if section.ID == resume.SectionBasic {
			view.Sidebar = renderSection(doc, section.ID, s, TemplateModern, true)
			continue
		}
		view.Sections = append(view.Sections, renderSection(doc, section.ID, s, TemplateModern, true))
	}
	return execute(modernLayoutTpl, view)
}

// renderTimelineLayout 给非 basic 区块包时间轴标记，
// 标题上提为时间轴节点标题，内部渲染器的标题被抑制以避免重复。
func renderTimelineLayout(doc *resume.Document, s resume.ResolvedSettings) template.HTML {
	view := newLayoutView(s)
	for _, section := range sortedSections(doc) {
		if section.ID == resume.SectionBasic {
			view.Entries = append(view.Entries, timelineEntryView{
				Content: renderSection(doc, section.ID, s, TemplateTimeline, true),
			})
			continue
		}
		view.Entries = append(view.Entries, timelineEntryView{
			Timeline: true,
			Title:    sectionTitleFor(doc, section.ID),
			Content:  renderSection(doc, section.ID, s, TemplateTimeline, false),
		})
	}
	return execute(timelineLayoutTpl, view)
}

// Preview 组合整份简历。doc 为 nil 时输出为空。
func Preview(doc *resume.Document, id TemplateID) template.HTML {
	if doc == nil {
		return ""
	}

	s := resume.ResolveSettings(doc.GlobalSettings)

	switch id {
	case TemplateModern:
		return renderModernLayout(doc, s)
	case TemplateTimeline:
		return renderTimelineLayout(doc, s)
	default:
		return renderClassicLayout(doc, s, id)
	}
}
