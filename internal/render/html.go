package render

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

// 模板函数与 PDF 模板保持同一套约定：
// 已经过净化/计算的片段通过 safe* 绕过二次转义。
var funcs = template.FuncMap{
	"safeHTML": func(s string) template.HTML { return template.HTML(s) },
	"safeCSS":  func(s string) template.CSS { return template.CSS(s) },
	"safeURL":  func(s string) template.URL { return template.URL(s) },
}

func mustParse(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(funcs).Parse(text))
}

// execute 渲染模板为 HTML 片段。
// 渲染核心不向调用方抛错，模板执行失败退化为空输出。
func execute(t *template.Template, data any) template.HTML {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return ""
	}
	return template.HTML(buf.String())
}

// richTextPolicy 在渲染边界净化富文本。
// 文档内容来自外部调用方，不能沿用“全量信任输入”的组件库边界。
var richTextPolicy = bluemonday.UGCPolicy()

// richText 净化描述/技能等富文本字段后标记为可直接插入的 HTML。
func richText(s string) template.HTML {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return template.HTML(richTextPolicy.Sanitize(s))
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
	"2006-01",
	"2006/01",
}

// formatDateZH 以 zh-CN 习惯（2006/1/2）格式化日期字符串。
// 解析失败不报错，原样返回。
func formatDateZH(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return fmt.Sprintf("%d/%d/%d", t.Year(), int(t.Month()), t.Day())
		}
	}
	return s
}

// linkHref 补全协议，保证锚点可点击。
func linkHref(link string) string {
	if strings.HasPrefix(link, "http") {
		return link
	}
	return "https://" + link
}

// formatLinkHost 把链接缩写为裸主机名（去掉协议与 www. 前缀）。
// 无法解析时原样返回。
func formatLinkHost(link string) string {
	u, err := url.Parse(linkHref(link))
	if err != nil || u.Hostname() == "" {
		return link
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// formatFloat 输出最短形式的数字（8/2 -> 4，9/2 -> 4.5）。
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// cssf 构造内联样式串。
func cssf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
