package render

import (
	"html/template"

	"resumekit/internal/resume"
)

var experienceItemTpl = mustParse("experience-item", `<div class="experience-item" style="margin-top: {{.ParagraphSpacing}}px"><div class="entry-grid" style="display: grid; grid-template-columns: {{.GridColumns}}; gap: 8px; align-items: center"><div class="font-bold" style="font-size: {{.SubheaderSize}}px; font-weight: bold">{{.Company}}</div>{{if .CenterSubtitle}}<div class="text-subtitle">{{.Position}}</div>{{end}}<div class="text-subtitle" style="justify-self: end">{{.Date}}</div></div>{{if .ShowPositionBelow}}<div class="text-subtitle">{{.Position}}</div>{{end}}{{if .Details}}<div class="rich-text" style="margin-top: 8px; font-size: {{.BaseFontSize}}px; line-height: {{.LineHeight}}">{{.Details}}</div>{{end}}</div>`)

type experienceItemView struct {
	ParagraphSpacing  int
	GridColumns       template.CSS
	Company           string
	SubheaderSize     int
	CenterSubtitle    bool
	Position          string
	ShowPositionBelow bool
	Date              string
	Details           template.HTML
	BaseFontSize      int
	LineHeight        string
}

// ExperienceSection 渲染工作经验区块。日期按原文显示，不做格式化。
func ExperienceSection(items []resume.Experience, s resume.ResolvedSettings, id TemplateID, showTitle bool) template.HTML {
	visible := make([]resume.Experience, 0, len(items))
	for _, exp := range items {
		if resume.Visible(exp.Visible) {
			visible = append(visible, exp)
		}
	}
	if len(visible) == 0 {
		return ""
	}

	rendered := make([]template.HTML, 0, len(visible))
	for _, exp := range visible {
		rendered = append(rendered, execute(experienceItemTpl, experienceItemView{
			ParagraphSpacing:  s.ParagraphSpacing,
			GridColumns:       entryColumns(s.CenterSubtitle),
			Company:           exp.Company,
			SubheaderSize:     s.SubheaderSize,
			CenterSubtitle:    s.CenterSubtitle,
			Position:          exp.Position,
			ShowPositionBelow: exp.Position != "" && !s.CenterSubtitle,
			Date:              exp.Date,
			Details:           richText(exp.Details),
			BaseFontSize:      s.BaseFontSize,
			LineHeight:        formatFloat(s.LineHeight),
		}))
	}

	var title template.HTML
	if showTitle {
		title = SectionTitle(TitleExperience, s, id)
	}
	return sectionShell(s, title, rendered)
}
