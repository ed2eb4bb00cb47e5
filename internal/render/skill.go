package render

import (
	"html/template"
	"strings"

	"resumekit/internal/resume"
)

var skillBodyTpl = mustParse("skill-body", `<div style="margin-top: {{.ParagraphSpacing}}px"><div class="rich-text" style="font-size: {{.BaseFontSize}}px; line-height: {{.LineHeight}}">{{.Content}}</div></div>`)

type skillBodyView struct {
	ParagraphSpacing int
	Content          template.HTML
	BaseFontSize     int
	LineHeight       string
}

// SkillSection 渲染技能区块：单个富文本块，空内容输出为空。
func SkillSection(content string, s resume.ResolvedSettings, id TemplateID, showTitle bool) template.HTML {
	if strings.TrimSpace(content) == "" {
		return ""
	}

	body := execute(skillBodyTpl, skillBodyView{
		ParagraphSpacing: s.ParagraphSpacing,
		Content:          richText(content),
		BaseFontSize:     s.BaseFontSize,
		LineHeight:       formatFloat(s.LineHeight),
	})

	var title template.HTML
	if showTitle {
		title = SectionTitle(TitleSkills, s, id)
	}
	return sectionShell(s, title, []template.HTML{body})
}
