package render

import (
	"html/template"

	"resumekit/internal/resume"
)

// 三种标题样式：classic 下划线、left-right 左侧色条、modern 大写加字距。
var (
	sectionTitleClassicTpl = mustParse("section-title-classic", `<h3 class="section-title pb-2 border-b" style="font-size: {{.HeaderSize}}px; font-weight: bold; color: {{.ThemeColor | safeCSS}}; margin-bottom: {{.MarginBottom}}px; border-bottom: 1px solid {{.ThemeColor | safeCSS}}">{{.Title}}</h3>`)

	sectionTitleModernTpl = mustParse("section-title-modern", `<h3 class="section-title border-b pb-2 uppercase tracking-wider" style="font-size: {{.HeaderSize}}px; font-weight: bold; color: {{.ThemeColor | safeCSS}}; margin-bottom: {{.MarginBottom}}px; border-bottom: 1px solid {{.ThemeColor | safeCSS}}; text-transform: uppercase; letter-spacing: 0.05em">{{.Title}}</h3>`)

	sectionTitleLeftRightTpl = mustParse("section-title-left-right", `<div class="section-title relative" style="position: relative"><div style="position: absolute; inset: 0; background-color: {{.ThemeColor | safeCSS}}; opacity: 0.1"></div><h3 class="pl-4 py-1" style="position: relative; display: flex; align-items: center; padding-left: 16px; padding-top: 4px; padding-bottom: 4px; font-size: {{.HeaderSize}}px; font-weight: bold; color: {{.ThemeColor | safeCSS}}; margin-bottom: {{.MarginBottom}}px; border-left: 3px solid {{.ThemeColor | safeCSS}}">{{.Title}}</h3></div>`)
)

type sectionTitleView struct {
	Title        string
	HeaderSize   int
	ThemeColor   string
	MarginBottom string
}

// SectionTitle 渲染区块标题，样式随布局切换；未知布局按 classic 处理。
func SectionTitle(title string, s resume.ResolvedSettings, id TemplateID) template.HTML {
	view := sectionTitleView{
		Title:        title,
		HeaderSize:   s.HeaderSize,
		ThemeColor:   s.ThemeColor,
		MarginBottom: formatFloat(float64(s.ParagraphSpacing) / 2),
	}

	switch id {
	case TemplateModern:
		return execute(sectionTitleModernTpl, view)
	case TemplateLeftRight:
		return execute(sectionTitleLeftRightTpl, view)
	default:
		return execute(sectionTitleClassicTpl, view)
	}
}
