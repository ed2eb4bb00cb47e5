package render

import (
	"html/template"

	"resumekit/internal/resume"
)

// 各内置区块在 Composer 未显式覆盖时使用的默认标题。
const (
	TitleExperience = "工作经验"
	TitleEducation  = "教育背景"
	TitleProjects   = "项目经验"
	TitleSkills     = "技能"
)

var sectionShellTpl = mustParse("section-shell", `<div class="resume-section rounded-md" style="margin-top: {{.SectionSpacing}}px">{{.Title}}<div>{{range .Items}}{{.}}{{end}}</div></div>`)

type sectionShellView struct {
	SectionSpacing int
	Title          template.HTML
	Items          []template.HTML
}

// sectionShell 包装一个区块：外层间距 + 可选标题 + 条目序列。
func sectionShell(s resume.ResolvedSettings, title template.HTML, items []template.HTML) template.HTML {
	return execute(sectionShellTpl, sectionShellView{
		SectionSpacing: s.SectionSpacing,
		Title:          title,
		Items:          items,
	})
}

// entryColumns 返回主行网格列：居中副标题时三列，否则两列。
func entryColumns(centerSubtitle bool) template.CSS {
	if centerSubtitle {
		return "1fr 1fr auto"
	}
	return "1fr auto"
}
