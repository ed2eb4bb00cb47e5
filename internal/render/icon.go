package render

import (
	"fmt"
	"html"
	"html/template"
)

// DefaultIconName 是未知图标名的统一回退。
const DefaultIconName = "Circle"

// IconOptions 控制图标的尺寸、颜色与描边。零值字段取默认。
type IconOptions struct {
	Size        int
	Color       string
	StrokeWidth float64
	Class       string
}

// HasIcon 报告名称是否在图标目录中，不产生任何输出。
func HasIcon(name string) bool {
	_, ok := iconShapes[name]
	return ok
}

// IconSVG 把符号化图标名解析为 SVG 标记。
// 未知名称静默回退到 Circle，永不报错。
func IconSVG(name string, opts IconOptions) template.HTML {
	shapes, ok := iconShapes[name]
	if !ok {
		shapes = iconShapes[DefaultIconName]
	}

	size := opts.Size
	if size <= 0 {
		size = 16
	}
	color := opts.Color
	if color == "" {
		color = "currentColor"
	}
	strokeWidth := opts.StrokeWidth
	if strokeWidth <= 0 {
		strokeWidth = 2
	}

	classAttr := ""
	if opts.Class != "" {
		classAttr = fmt.Sprintf(` class="%s"`, html.EscapeString(opts.Class))
	}

	svg := fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 24 24" fill="none" stroke="%s" stroke-width="%s" stroke-linecap="round" stroke-linejoin="round"%s>%s</svg>`,
		size, size, html.EscapeString(color), formatFloat(strokeWidth), classAttr, shapes,
	)
	return template.HTML(svg)
}

// IconMeta 是目录里一个图标的名称与中文说明。
type IconMeta struct {
	Name  string
	Label string
}

// IconCategories 把目录按用途分组，供宿主编辑器做图标选择。
var IconCategories = map[string][]IconMeta{
	"contact": {
		{Name: "Mail", Label: "邮箱"},
		{Name: "Phone", Label: "电话"},
		{Name: "MapPin", Label: "地址"},
		{Name: "Globe", Label: "网站"},
		{Name: "MessageSquare", Label: "消息"},
	},
	"social": {
		{Name: "Github", Label: "GitHub"},
		{Name: "Linkedin", Label: "LinkedIn"},
		{Name: "Twitter", Label: "Twitter"},
		{Name: "Facebook", Label: "Facebook"},
		{Name: "Instagram", Label: "Instagram"},
	},
	"datetime": {
		{Name: "Calendar", Label: "日历"},
		{Name: "CalendarRange", Label: "日期范围"},
		{Name: "Clock", Label: "时钟"},
	},
	"work": {
		{Name: "Briefcase", Label: "公文包"},
		{Name: "Building", Label: "建筑"},
		{Name: "Users", Label: "团队"},
		{Name: "Award", Label: "奖项"},
	},
	"education": {
		{Name: "GraduationCap", Label: "学位帽"},
		{Name: "BookOpen", Label: "书本"},
		{Name: "School", Label: "学校"},
	},
	"skills": {
		{Name: "Code", Label: "代码"},
		{Name: "Cpu", Label: "处理器"},
		{Name: "Zap", Label: "闪电"},
		{Name: "Wrench", Label: "工具"},
	},
	"projects": {
		{Name: "FolderOpen", Label: "文件夹"},
		{Name: "Rocket", Label: "火箭"},
		{Name: "Package", Label: "包裹"},
		{Name: "Layers", Label: "图层"},
	},
	"general": {
		{Name: "User", Label: "用户"},
		{Name: "FileText", Label: "文件"},
		{Name: "Link", Label: "链接"},
		{Name: "Star", Label: "星标"},
		{Name: "Heart", Label: "喜欢"},
		{Name: "Info", Label: "信息"},
	},
}

// IconLabel 返回图标的中文说明；不在目录中时返回名称本身。
func IconLabel(name string) string {
	for _, icons := range IconCategories {
		for _, icon := range icons {
			if icon.Name == name {
				return icon.Label
			}
		}
	}
	return name
}

// IconCategory 返回图标所属分组；未收录返回空串。
func IconCategory(name string) string {
	for category, icons := range IconCategories {
		for _, icon := range icons {
			if icon.Name == name {
				return category
			}
		}
	}
	return ""
}
