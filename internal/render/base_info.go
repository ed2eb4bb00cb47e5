package render

import (
	"html/template"

	"resumekit/internal/resume"
)

var baseInfoTpl = mustParse("base-info", `<div class="base-info rounded-md" style="{{.ContainerStyle}}"><div style="{{.LeftStyle}}">{{if .Photo}}<div style="width: {{.Photo.Width}}px; height: {{.Photo.Height}}px; border-radius: {{.Photo.BorderRadius}}; overflow: hidden; flex-shrink: 0"><img src="{{.Photo.Src}}" alt="{{.Photo.Alt}}" style="width: 100%; height: 100%; object-fit: cover"/></div>{{end}}<div style="display: flex; flex-direction: column; text-align: {{.NameTitleAlign}}">{{if .Name}}<h1 class="font-bold" style="font-size: 30px; font-weight: bold{{if .Modern}}; color: #ffffff{{end}}">{{.Name}}</h1>{{end}}{{if .Title}}<h2 style="font-size: 18px{{if .Modern}}; color: #ffffff{{end}}">{{.Title}}</h2>{{end}}</div></div><div class="base-info-fields" style="{{.FieldsStyle}}">{{range .Fields}}<div class="base-info-field" style="display: flex; align-items: center; white-space: nowrap; overflow: hidden{{if $.Modern}}; width: 100%{{end}}">{{if $.IconMode}}<div style="display: flex; align-items: center; gap: 4px">{{.Icon}}{{if .IsEmail}}<a href="mailto:{{.Value}}" class="underline"{{if $.Modern}} style="color: #ffffff"{{end}}>{{.Value}}</a>{{else}}<span>{{.Value}}</span>{{end}}</div>{{else}}<div style="display: flex; align-items: center; gap: 8px; overflow: hidden"><span>{{.Label}}:</span><span class="truncate" style="overflow: hidden; text-overflow: ellipsis">{{.Value}}</span></div>{{end}}</div>{{end}}</div></div>`)

type basicPhotoView struct {
	Src          template.URL
	Alt          string
	Width        int
	Height       int
	BorderRadius template.CSS
}

type basicFieldView struct {
	Key     string
	Label   string
	Value   string
	Icon    template.HTML
	IsEmail bool
	Custom  bool
}

type baseInfoView struct {
	ContainerStyle template.CSS
	LeftStyle      template.CSS
	NameTitleAlign template.CSS
	FieldsStyle    template.CSS
	Modern         bool
	IconMode       bool
	Photo          *basicPhotoView
	Name           string
	Title          string
	Fields         []basicFieldView
}

// 默认四字段顺序：邮箱、电话、地址、网站，空值直接过滤。
func defaultOrderedFields(b resume.BasicInfo) []basicFieldView {
	defaults := []struct {
		key, icon, label string
	}{
		{"email", "Mail", "电子邮箱"},
		{"phone", "Phone", "电话"},
		{"location", "MapPin", "地址"},
		{"website", "Globe", "网站"},
	}

	fields := make([]basicFieldView, 0, len(defaults))
	for _, d := range defaults {
		value := b.FieldValue(d.key)
		if value == "" {
			continue
		}
		icon := d.icon
		if custom, ok := b.Icons[d.key]; ok && custom != "" {
			icon = custom
		}
		fields = append(fields, basicFieldView{
			Key:     d.key,
			Label:   d.label,
			Value:   value,
			Icon:    template.HTML(icon), // 占位存名称，渲染前替换为 SVG
			IsEmail: d.key == "email",
		})
	}
	return fields
}

// orderedFields 按 fieldOrder 展开字段；name/title 始终单独渲染，在此跳过。
func orderedFields(b resume.BasicInfo) []basicFieldView {
	if b.FieldOrder == nil {
		return defaultOrderedFields(b)
	}

	fields := make([]basicFieldView, 0, len(b.FieldOrder))
	for _, f := range b.FieldOrder {
		if !resume.Visible(f.Visible) || f.Key == "name" || f.Key == "title" {
			continue
		}
		value := b.FieldValue(f.Key)
		if f.Key == "birthDate" && value != "" {
			value = formatDateZH(value)
		}
		if value == "" {
			continue
		}
		icon := b.Icons[f.Key]
		if icon == "" {
			icon = "User"
		}
		fields = append(fields, basicFieldView{
			Key:     f.Key,
			Label:   f.Label,
			Value:   value,
			Icon:    template.HTML(icon),
			IsEmail: f.Key == "email",
			Custom:  f.Custom,
		})
	}
	return fields
}

// allFields = 有序字段 + 可见的自定义字段。
func allFields(b resume.BasicInfo) []basicFieldView {
	fields := orderedFields(b)
	for _, f := range b.CustomFields {
		if !resume.Visible(f.Visible) {
			continue
		}
		fields = append(fields, basicFieldView{
			Key:    f.ID,
			Label:  f.Label,
			Value:  f.Value,
			Icon:   template.HTML(f.Icon),
			Custom: true,
		})
	}
	return fields
}

// fieldVisibleInOrder 查询 fieldOrder 中 name/title 的可见性；缺省可见。
func fieldVisibleInOrder(b resume.BasicInfo, key string) bool {
	for _, f := range b.FieldOrder {
		if f.Key == key {
			return resume.Visible(f.Visible)
		}
	}
	return true
}

type baseInfoLayoutStyles struct {
	container      template.CSS
	left           template.CSS
	fields         template.CSS
	nameTitleAlign template.CSS
}

func baseInfoStyles(layout string, baseFontSize int, modern bool) baseInfoLayoutStyles {
	fieldColor := "rgb(75, 85, 99)"
	if modern {
		fieldColor = "#ffffff"
	}
	gridFields := template.CSS(cssf("display: grid; grid-template-columns: repeat(2, minmax(0, 1fr)); column-gap: 32px; row-gap: 8px; font-size: %dpx; color: %s; max-width: 600px", baseFontSize, fieldColor))

	switch layout {
	case "right":
		return baseInfoLayoutStyles{
			container:      "display: flex; align-items: center; justify-content: space-between; gap: 24px; flex-direction: row-reverse",
			left:           "display: flex; justify-content: flex-end; align-items: center; gap: 24px",
			fields:         gridFields,
			nameTitleAlign: "right",
		}
	case "center":
		return baseInfoLayoutStyles{
			container:      "display: flex; flex-direction: column; align-items: center; gap: 12px",
			left:           "display: flex; flex-direction: column; align-items: center; gap: 16px",
			fields:         template.CSS(cssf("width: 100%%; display: flex; justify-content: flex-start; align-items: center; flex-wrap: wrap; gap: 12px; font-size: %dpx; color: %s", baseFontSize, fieldColor)),
			nameTitleAlign: "center",
		}
	default:
		return baseInfoLayoutStyles{
			container:      "display: flex; align-items: center; justify-content: space-between; gap: 24px",
			left:           "display: flex; align-items: center; gap: 24px",
			fields:         gridFields,
			nameTitleAlign: "left",
		}
	}
}

// BaseInfo 渲染头部基本信息：照片、姓名/职位、字段列表。
func BaseInfo(b resume.BasicInfo, s resume.ResolvedSettings, id TemplateID) template.HTML {
	modern := id == TemplateModern
	styles := baseInfoStyles(b.Layout, s.BaseFontSize, modern)

	view := baseInfoView{
		ContainerStyle: styles.container,
		LeftStyle:      styles.left,
		NameTitleAlign: styles.nameTitleAlign,
		FieldsStyle:    styles.fields,
		Modern:         modern,
		IconMode:       s.UseIconMode,
	}

	if b.Photo != "" && b.PhotoConfig != nil && b.PhotoConfig.Visible {
		width := b.PhotoConfig.Width
		if width <= 0 {
			width = 100
		}
		height := b.PhotoConfig.Height
		if height <= 0 {
			height = 100
		}
		view.Photo = &basicPhotoView{
			Src:          template.URL(b.Photo),
			Alt:          b.Name + "'s photo",
			Width:        width,
			Height:       height,
			BorderRadius: template.CSS(b.PhotoConfig.BorderRadiusValue()),
		}
	}

	if fieldVisibleInOrder(b, "name") {
		view.Name = b.Name
	}
	if fieldVisibleInOrder(b, "title") {
		view.Title = b.Title
	}

	iconColor := "rgb(75, 85, 99)"
	if modern {
		iconColor = "#ffffff"
	}
	fields := allFields(b)
	for i := range fields {
		if s.UseIconMode && fields[i].Icon != "" {
			fields[i].Icon = IconSVG(string(fields[i].Icon), IconOptions{Size: 16, Color: iconColor})
		} else {
			fields[i].Icon = ""
		}
	}
	view.Fields = fields

	return execute(baseInfoTpl, view)
}
