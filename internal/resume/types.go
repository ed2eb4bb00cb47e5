package resume

import "fmt"

// Document 表示存储在简历 Content(JSONB) 中的完整简历数据。
// 渲染核心只读不写：一次渲染是对该结构快照的纯函数。
type Document struct {
	ID             string                  `json:"id"`
	Title          string                  `json:"title"`
	CreatedAt      string                  `json:"createdAt"`
	UpdatedAt      string                  `json:"updatedAt"`
	TemplateID     string                  `json:"templateId"`
	Basic          BasicInfo               `json:"basic"`
	Education      []Education             `json:"education"`
	Experience     []Experience            `json:"experience"`
	Projects       []Project               `json:"projects"`
	CustomData     map[string][]CustomItem `json:"customData"`
	SkillContent   string                  `json:"skillContent"`
	ActiveSection  string                  `json:"activeSection"`
	MenuSections   []MenuSection           `json:"menuSections"`
	GlobalSettings GlobalSettings          `json:"globalSettings"`
}

// BasicField 描述基本信息里一个字段的展示顺序与可见性。
type BasicField struct {
	ID      string `json:"id"`
	Key     string `json:"key"`
	Label   string `json:"label"`
	Type    string `json:"type,omitempty"`
	Visible *bool  `json:"visible"`
	Custom  bool   `json:"custom,omitempty"`
}

// CustomField 是用户自行添加的键值字段（带可选图标）。
type CustomField struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Value   string `json:"value"`
	Icon    string `json:"icon,omitempty"`
	Visible *bool  `json:"visible,omitempty"`
}

// BasicInfo 汇总姓名、联系方式、照片等头部信息。
// Extra 承载 fieldOrder 引用的非固定字段。
type BasicInfo struct {
	Name             string            `json:"name"`
	Title            string            `json:"title"`
	Email            string            `json:"email"`
	Phone            string            `json:"phone"`
	Location         string            `json:"location"`
	Website          string            `json:"website"`
	BirthDate        string            `json:"birthDate"`
	EmploymentStatus string            `json:"employementStatus"`
	Icons            map[string]string `json:"icons"`
	Photo            string            `json:"photo"`
	PhotoConfig      *PhotoConfig      `json:"photoConfig,omitempty"`
	Layout           string            `json:"layout,omitempty"`
	FieldOrder       []BasicField      `json:"fieldOrder,omitempty"`
	CustomFields     []CustomField     `json:"customFields"`
	Extra            map[string]string `json:"extra,omitempty"`
}

// FieldValue 按 key 取出字段值；未知 key 回落到 Extra。
func (b BasicInfo) FieldValue(key string) string {
	switch key {
	case "name":
		return b.Name
	case "title":
		return b.Title
	case "email":
		return b.Email
	case "phone":
		return b.Phone
	case "location":
		return b.Location
	case "website":
		return b.Website
	case "birthDate":
		return b.BirthDate
	case "employementStatus":
		return b.EmploymentStatus
	default:
		return b.Extra[key]
	}
}

// 照片圆角档位。
const (
	BorderRadiusNone   = "none"
	BorderRadiusMedium = "medium"
	BorderRadiusFull   = "full"
	BorderRadiusCustom = "custom"
)

// PhotoConfig 描述照片的尺寸、比例与圆角。
type PhotoConfig struct {
	Width              int    `json:"width"`
	Height             int    `json:"height"`
	AspectRatio        string `json:"aspectRatio"`
	BorderRadius       string `json:"borderRadius"`
	CustomBorderRadius int    `json:"customBorderRadius"`
	Visible            bool   `json:"visible"`
}

// BorderRadiusValue 把圆角档位解析为固定的 CSS 值。
func (p PhotoConfig) BorderRadiusValue() string {
	switch p.BorderRadius {
	case BorderRadiusMedium:
		return "8px"
	case BorderRadiusFull:
		return "50%"
	case BorderRadiusCustom:
		return fmt.Sprintf("%dpx", p.CustomBorderRadius)
	default:
		return "0"
	}
}

// Education 是一条教育经历。Visible 为 nil 视为可见。
type Education struct {
	ID          string `json:"id"`
	School      string `json:"school"`
	Major       string `json:"major"`
	Degree      string `json:"degree"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	GPA         string `json:"gpa,omitempty"`
	Description string `json:"description,omitempty"`
	Visible     *bool  `json:"visible,omitempty"`
}

// Experience 是一条工作经历。
type Experience struct {
	ID       string `json:"id"`
	Company  string `json:"company"`
	Position string `json:"position"`
	Date     string `json:"date"`
	Details  string `json:"details"`
	Visible  *bool  `json:"visible,omitempty"`
}

// Project 是一条项目经历。
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
	Visible     *bool  `json:"visible,omitempty"`
}

// CustomItem 是自定义区块里的一条内容。
// 与其余条目不同：仅当 Visible 显式为 true 且标题或描述非空时才参与渲染。
type CustomItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	DateRange   string `json:"dateRange"`
	Description string `json:"description"`
	Visible     bool   `json:"visible"`
}

// GlobalSettings 是全局展示设置；零值字段在渲染前经 ResolveSettings 填充默认值。
type GlobalSettings struct {
	ThemeColor       string  `json:"themeColor,omitempty"`
	FontFamily       string  `json:"fontFamily,omitempty"`
	BaseFontSize     int     `json:"baseFontSize,omitempty"`
	PagePadding      int     `json:"pagePadding,omitempty"`
	ParagraphSpacing int     `json:"paragraphSpacing,omitempty"`
	LineHeight       float64 `json:"lineHeight,omitempty"`
	SectionSpacing   int     `json:"sectionSpacing,omitempty"`
	HeaderSize       int     `json:"headerSize,omitempty"`
	SubheaderSize    int     `json:"subheaderSize,omitempty"`
	UseIconMode      bool    `json:"useIconMode,omitempty"`
	CenterSubtitle   bool    `json:"centerSubtitle,omitempty"`
}

// MenuSection 描述一个区块的启用状态与排序。
type MenuSection struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Icon    string `json:"icon"`
	Enabled bool   `json:"enabled"`
	Order   int    `json:"order"`
}

// Visible 报告可见性指针语义：缺省即可见。
func Visible(flag *bool) bool {
	return flag == nil || *flag
}
