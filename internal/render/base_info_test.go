package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resumekit/internal/resume"
)

func TestBaseInfoDefaultFieldOrderFiltersEmpty(t *testing.T) {
	b := resume.BasicInfo{
		Name:  "张三",
		Email: "zhangsan@example.com",
		Phone: "138-0000-0000",
		// website 留空，应被过滤
	}
	out := string(BaseInfo(b, testSettings(), TemplateClassic))

	assert.Contains(t, out, "zhangsan@example.com")
	assert.Contains(t, out, "138-0000-0000")
	assert.Contains(t, out, "电子邮箱")
	assert.Contains(t, out, "电话")
	assert.NotContains(t, out, "网站")
	assert.NotContains(t, out, "地址")
}

func TestBaseInfoNameAndTitleRenderedSeparately(t *testing.T) {
	b := resume.BasicInfo{Name: "张三", Title: "资深工程师"}
	out := string(BaseInfo(b, testSettings(), TemplateClassic))

	assert.Contains(t, out, `<h1 class="font-bold" style="font-size: 30px`)
	assert.Contains(t, out, "张三")
	assert.Contains(t, out, `<h2 style="font-size: 18px`)
	assert.Contains(t, out, "资深工程师")
}

func TestBaseInfoFieldOrderOverride(t *testing.T) {
	hidden := false
	b := resume.BasicInfo{
		Name:      "张三",
		Email:     "zhangsan@example.com",
		Phone:     "138-0000-0000",
		BirthDate: "1995-03-15",
		FieldOrder: []resume.BasicField{
			{Key: "name", Label: "姓名"},
			{Key: "birthDate", Label: "出生日期"},
			{Key: "phone", Label: "电话", Visible: &hidden},
			{Key: "email", Label: "邮箱"},
		},
	}
	out := string(BaseInfo(b, testSettings(), TemplateClassic))

	// birthDate 按 zh-CN 习惯格式化
	assert.Contains(t, out, "1995/3/15")
	assert.Contains(t, out, "zhangsan@example.com")
	// 显式不可见的字段被过滤
	assert.NotContains(t, out, "138-0000-0000")
}

func TestBaseInfoNameHiddenByFieldOrder(t *testing.T) {
	hidden := false
	b := resume.BasicInfo{
		Name:       "张三",
		Title:      "工程师",
		FieldOrder: []resume.BasicField{{Key: "name", Visible: &hidden}},
	}
	out := string(BaseInfo(b, testSettings(), TemplateClassic))

	assert.NotContains(t, out, "张三")
	assert.Contains(t, out, "工程师")
}

func TestBaseInfoCustomFieldsAppended(t *testing.T) {
	b := resume.BasicInfo{
		Name: "张三",
		CustomFields: []resume.CustomField{
			{ID: "cf1", Label: "微信", Value: "zs_888"},
		},
	}
	out := string(BaseInfo(b, testSettings(), TemplateClassic))

	assert.Contains(t, out, "微信")
	assert.Contains(t, out, "zs_888")
}

func TestBaseInfoIconMode(t *testing.T) {
	b := resume.BasicInfo{Email: "zhangsan@example.com"}
	s := resume.ResolveSettings(resume.GlobalSettings{UseIconMode: true})
	out := string(BaseInfo(b, s, TemplateClassic))

	// 图标模式：svg + mailto 链接，标签不出现
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, `href="mailto:zhangsan@example.com"`)
	assert.NotContains(t, out, "电子邮箱:")
}

func TestBaseInfoLabelModeShowsLabels(t *testing.T) {
	b := resume.BasicInfo{Email: "zhangsan@example.com"}
	out := string(BaseInfo(b, testSettings(), TemplateClassic))

	assert.Contains(t, out, "电子邮箱:")
	assert.NotContains(t, out, "<svg")
}

func TestBaseInfoPhoto(t *testing.T) {
	b := resume.BasicInfo{
		Name:  "张三",
		Photo: "https://cdn.example.com/photo.jpg",
		PhotoConfig: &resume.PhotoConfig{
			Width:        90,
			Height:       120,
			BorderRadius: resume.BorderRadiusFull,
			Visible:      true,
		},
	}
	out := string(BaseInfo(b, testSettings(), TemplateClassic))

	assert.Contains(t, out, "width: 90px")
	assert.Contains(t, out, "height: 120px")
	assert.Contains(t, out, "border-radius: 50%")
	assert.Contains(t, out, `src="https://cdn.example.com/photo.jpg"`)
}

func TestBaseInfoPhotoHiddenWhenConfigInvisible(t *testing.T) {
	b := resume.BasicInfo{
		Photo:       "https://cdn.example.com/photo.jpg",
		PhotoConfig: &resume.PhotoConfig{Visible: false},
	}
	out := string(BaseInfo(b, testSettings(), TemplateClassic))

	assert.NotContains(t, out, "photo.jpg")
}

func TestBaseInfoModernUsesWhiteText(t *testing.T) {
	b := resume.BasicInfo{Name: "张三", Email: "zhangsan@example.com"}
	out := string(BaseInfo(b, testSettings(), TemplateModern))

	assert.Contains(t, out, "color: #ffffff")
}

func TestBaseInfoCenterLayout(t *testing.T) {
	b := resume.BasicInfo{Name: "张三", Layout: "center"}
	out := string(BaseInfo(b, testSettings(), TemplateClassic))

	assert.Contains(t, out, "flex-direction: column")
	assert.Contains(t, out, "text-align: center")
}
