package render

import (
	"html/template"

	"resumekit/internal/resume"
)

var customItemTpl = mustParse("custom-item", `<div class="custom-item" style="margin-top: {{.ParagraphSpacing}}px"><div class="entry-grid" style="display: grid; grid-template-columns: repeat({{.GridColumns}}, minmax(0, 1fr)); gap: 8px; align-items: center"><div style="display: flex; align-items: center; gap: 8px"><h4 class="font-bold" style="font-size: {{.SubheaderSize}}px; font-weight: bold">{{.Title}}</h4></div>{{if .CenterSubtitle}}<div class="text-subtitle">{{.Subtitle}}</div>{{end}}<span class="text-subtitle" style="justify-self: end">{{.DateRange}}</span></div>{{if .ShowSubtitleBelow}}<div class="text-subtitle" style="margin-top: 4px">{{.Subtitle}}</div>{{end}}{{if .Description}}<div class="rich-text" style="margin-top: 8px; font-size: {{.BaseFontSize}}px; line-height: {{.LineHeight}}">{{.Description}}</div>{{end}}</div>`)

type customItemView struct {
	ParagraphSpacing  int
	GridColumns       int
	Title             string
	SubheaderSize     int
	CenterSubtitle    bool
	Subtitle          string
	ShowSubtitleBelow bool
	DateRange         string
	Description       template.HTML
	BaseFontSize      int
	LineHeight        string
}

// customItemVisible 自定义条目的准入规则：必须显式可见且有标题或描述。
func customItemVisible(item resume.CustomItem) bool {
	return item.Visible && (item.Title != "" || item.Description != "")
}

// CustomSection 渲染一个自定义区块；标题总是由 Composer 传入。
func CustomSection(title string, items []resume.CustomItem, s resume.ResolvedSettings, id TemplateID, showTitle bool) template.HTML {
	visible := make([]resume.CustomItem, 0, len(items))
	for _, item := range items {
		if customItemVisible(item) {
			visible = append(visible, item)
		}
	}
	if len(visible) == 0 {
		return ""
	}

	gridColumns := 2
	if s.CenterSubtitle {
		gridColumns = 3
	}

	rendered := make([]template.HTML, 0, len(visible))
	for _, item := range visible {
		rendered = append(rendered, execute(customItemTpl, customItemView{
			ParagraphSpacing:  s.ParagraphSpacing,
			GridColumns:       gridColumns,
			Title:             item.Title,
			SubheaderSize:     s.SubheaderSize,
			CenterSubtitle:    s.CenterSubtitle,
			Subtitle:          item.Subtitle,
			ShowSubtitleBelow: item.Subtitle != "" && !s.CenterSubtitle,
			DateRange:         item.DateRange,
			Description:       richText(item.Description),
			BaseFontSize:      s.BaseFontSize,
			LineHeight:        formatFloat(s.LineHeight),
		}))
	}

	var heading template.HTML
	if showTitle {
		heading = SectionTitle(title, s, id)
	}
	return sectionShell(s, heading, rendered)
}
