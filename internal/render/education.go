package render

import (
	"html/template"
	"strings"

	"resumekit/internal/resume"
)

var educationItemTpl = mustParse("education-item", `<div class="education-item" style="margin-top: {{.ParagraphSpacing}}px"><div class="entry-grid" style="display: grid; grid-template-columns: {{.GridColumns}}; gap: 8px; align-items: center"><div class="font-bold" style="font-size: {{.SubheaderSize}}px; font-weight: bold"><span>{{.School}}</span></div>{{if .CenterSubtitle}}<div class="text-subtitle">{{.Subtitle}}</div>{{end}}<span class="text-subtitle" style="justify-self: end">{{.DateRange}}</span></div>{{if not .CenterSubtitle}}<div class="text-subtitle" style="margin-top: 4px">{{.Subtitle}}</div>{{end}}{{if .Description}}<div class="rich-text" style="margin-top: 8px; font-size: {{.BaseFontSize}}px; line-height: {{.LineHeight}}">{{.Description}}</div>{{end}}</div>`)

type educationItemView struct {
	ParagraphSpacing int
	GridColumns      template.CSS
	School           string
	SubheaderSize    int
	CenterSubtitle   bool
	Subtitle         string
	DateRange        string
	Description      template.HTML
	BaseFontSize     int
	LineHeight       string
}

// educationSubtitle 拼出“专业 · 学位 · GPA x”副标题。
func educationSubtitle(edu resume.Education) string {
	parts := make([]string, 0, 3)
	if edu.Major != "" {
		parts = append(parts, edu.Major)
	}
	if edu.Degree != "" {
		parts = append(parts, edu.Degree)
	}
	if edu.GPA != "" {
		parts = append(parts, "GPA "+edu.GPA)
	}
	return strings.Join(parts, " · ")
}

// EducationSection 渲染教育背景区块。
// 空列表或过滤后无可见条目时输出为空（不渲染标题与容器）。
func EducationSection(items []resume.Education, s resume.ResolvedSettings, id TemplateID, showTitle bool) template.HTML {
	visible := make([]resume.Education, 0, len(items))
	for _, edu := range items {
		if resume.Visible(edu.Visible) {
			visible = append(visible, edu)
		}
	}
	if len(visible) == 0 {
		return ""
	}

	rendered := make([]template.HTML, 0, len(visible))
	for _, edu := range visible {
		rendered = append(rendered, execute(educationItemTpl, educationItemView{
			ParagraphSpacing: s.ParagraphSpacing,
			GridColumns:      entryColumns(s.CenterSubtitle),
			School:           edu.School,
			SubheaderSize:    s.SubheaderSize,
			CenterSubtitle:   s.CenterSubtitle,
			Subtitle:         educationSubtitle(edu),
			DateRange:        formatDateZH(edu.StartDate) + " - " + formatDateZH(edu.EndDate),
			Description:      richText(edu.Description),
			BaseFontSize:     s.BaseFontSize,
			LineHeight:       formatFloat(s.LineHeight),
		}))
	}

	var title template.HTML
	if showTitle {
		title = SectionTitle(TitleEducation, s, id)
	}
	return sectionShell(s, title, rendered)
}
