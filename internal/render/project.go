package render

import (
	"html/template"

	"resumekit/internal/resume"
)

// 主行固定三列：名称、链接/角色、日期。链接列在无链接时保留占位。
// 非居中模式链接缩写为裸主机名，居中模式在行下展示完整原文，
// 两种形态的差异是特意保留的现状行为。
var projectItemTpl = mustParse("project-item", `<div class="project-item" style="margin-top: {{.ParagraphSpacing}}px"><div class="entry-grid" style="display: grid; grid-template-columns: repeat(3, minmax(0, 1fr)); gap: 8px; align-items: center"><div style="display: flex; align-items: center; gap: 8px"><h3 class="font-bold" style="font-size: {{.SubheaderSize}}px; font-weight: bold">{{.Name}}</h3></div>{{if .CenterSubtitle}}<div class="text-subtitle">{{.Role}}</div>{{else if .Link}}<a href="{{.Href}}" target="_blank" rel="noopener noreferrer" class="underline" title="{{.Link}}">{{.HostText}}</a>{{else}}<div></div>{{end}}<div class="text-subtitle" style="justify-self: end">{{.Date}}</div></div>{{if .ShowRoleBelow}}<div class="text-subtitle">{{.Role}}</div>{{end}}{{if .ShowRawLinkBelow}}<a href="{{.Href}}" target="_blank" rel="noopener noreferrer" class="underline" title="{{.Link}}">{{.Link}}</a>{{end}}{{if .Description}}<div class="rich-text" style="margin-top: 8px; font-size: {{.BaseFontSize}}px; line-height: {{.LineHeight}}">{{.Description}}</div>{{else}}<div></div>{{end}}</div>`)

type projectItemView struct {
	ParagraphSpacing int
	Name             string
	SubheaderSize    int
	CenterSubtitle   bool
	Role             string
	ShowRoleBelow    bool
	Link             string
	Href             template.URL
	HostText         string
	ShowRawLinkBelow bool
	Date             string
	Description      template.HTML
	BaseFontSize     int
	LineHeight       string
}

// ProjectSection 渲染项目经验区块。
func ProjectSection(items []resume.Project, s resume.ResolvedSettings, id TemplateID, showTitle bool) template.HTML {
	visible := make([]resume.Project, 0, len(items))
	for _, p := range items {
		if resume.Visible(p.Visible) {
			visible = append(visible, p)
		}
	}
	if len(visible) == 0 {
		return ""
	}

	rendered := make([]template.HTML, 0, len(visible))
	for _, p := range visible {
		view := projectItemView{
			ParagraphSpacing: s.ParagraphSpacing,
			Name:             p.Name,
			SubheaderSize:    s.SubheaderSize,
			CenterSubtitle:   s.CenterSubtitle,
			Role:             p.Role,
			ShowRoleBelow:    p.Role != "" && !s.CenterSubtitle,
			Link:             p.Link,
			Date:             p.Date,
			Description:      richText(p.Description),
			BaseFontSize:     s.BaseFontSize,
			LineHeight:       formatFloat(s.LineHeight),
		}
		if p.Link != "" {
			view.Href = template.URL(linkHref(p.Link))
			view.HostText = formatLinkHost(p.Link)
			view.ShowRawLinkBelow = s.CenterSubtitle
		}
		rendered = append(rendered, execute(projectItemTpl, view))
	}

	var title template.HTML
	if showTitle {
		title = SectionTitle(TitleProjects, s, id)
	}
	return sectionShell(s, title, rendered)
}
