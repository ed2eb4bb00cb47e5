package render

import (
	"html/template"

	"resumekit/internal/resume"
)

// pageTemplateString 是整页输出的 Go HTML 模板。
// 预览端点与 PDF 渲染共用同一份页面，保证所见即所得。
const pageTemplateString = `<!DOCTYPE html>
<html lang="zh-CN">
<head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
    <style>
        * { box-sizing: border-box; }
        body {
            margin: 0;
            padding: 0;
            background: #ffffff;
            font-family: {{if .FontFamily}}'{{.FontFamily}}', {{end}}-apple-system, 'Segoe UI', 'PingFang SC', 'Microsoft YaHei', sans-serif;
        }
        h1, h2, h3, h4, p { margin: 0; }
        a { color: inherit; }
        ul, ol { margin: 0; padding-left: 1.5em; }
        .page {
            width: 794px; /* A4 @ 96 DPI */
            min-height: 1122px;
            margin: 0 auto;
            background: white;
            padding: {{.PagePadding}}px;
        }
        .text-subtitle { color: rgb(75, 85, 99); }
        .underline { text-decoration: underline; }
        .truncate { overflow: hidden; text-overflow: ellipsis; }
        @media print {
            * {
                -webkit-print-color-adjust: exact !important;
                print-color-adjust: exact !important;
            }
            @page {
                size: A4;
                margin: 0;
            }
            body { background: white; }
            .page { margin: 0; }
        }
    </style>
</head>
<body>
    <div class="page">
        {{.Body}}
    </div>
</body>
</html>
`

var pageTpl = mustParse("page", pageTemplateString)

type pageView struct {
	Title       string
	FontFamily  string
	PagePadding int
	Body        template.HTML
}

// Page 把组合结果包装为完整的 HTML 页面。doc 为 nil 时输出为空。
func Page(doc *resume.Document, id TemplateID) string {
	if doc == nil {
		return ""
	}

	s := resume.ResolveSettings(doc.GlobalSettings)
	return string(execute(pageTpl, pageView{
		Title:       doc.Title,
		FontFamily:  s.FontFamily,
		PagePadding: s.PagePadding,
		Body:        Preview(doc, id),
	}))
}
