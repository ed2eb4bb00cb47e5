package resume

import (
	"time"

	"github.com/google/uuid"
)

// 区块 id 与固定默认菜单；渲染调度依赖这些 id。
const (
	SectionBasic      = "basic"
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionProjects   = "projects"
	SectionSkills     = "skills"
)

// DefaultPhotoConfig 返回照片的初始配置。
func DefaultPhotoConfig() *PhotoConfig {
	return &PhotoConfig{
		Width:              90,
		Height:             120,
		AspectRatio:        "1:1",
		BorderRadius:       BorderRadiusNone,
		CustomBorderRadius: 0,
		Visible:            true,
	}
}

func boolPtr(v bool) *bool { return &v }

// DefaultFieldOrder 返回基本信息字段的初始顺序。
func DefaultFieldOrder() []BasicField {
	return []BasicField{
		{ID: "1", Key: "name", Label: "姓名", Type: "text", Visible: boolPtr(true)},
		{ID: "2", Key: "title", Label: "职位", Type: "text", Visible: boolPtr(true)},
		{ID: "3", Key: "email", Label: "邮箱", Type: "text", Visible: boolPtr(true)},
		{ID: "4", Key: "phone", Label: "电话", Type: "text", Visible: boolPtr(true)},
		{ID: "5", Key: "location", Label: "地址", Type: "text", Visible: boolPtr(true)},
		{ID: "6", Key: "birthDate", Label: "出生日期", Type: "date", Visible: boolPtr(true)},
		{ID: "7", Key: "employementStatus", Label: "在职状态", Type: "text", Visible: boolPtr(true)},
		{ID: "8", Key: "website", Label: "网站", Type: "text", Visible: boolPtr(true)},
	}
}

// DefaultMenuSections 返回五个内置区块，order 依次 0..4，全部启用。
func DefaultMenuSections() []MenuSection {
	return []MenuSection{
		{ID: SectionBasic, Title: "基本信息", Icon: "User", Enabled: true, Order: 0},
		{ID: SectionExperience, Title: "工作经验", Icon: "Briefcase", Enabled: true, Order: 1},
		{ID: SectionEducation, Title: "教育背景", Icon: "GraduationCap", Enabled: true, Order: 2},
		{ID: SectionProjects, Title: "项目经验", Icon: "FolderOpen", Enabled: true, Order: 3},
		{ID: SectionSkills, Title: "技能", Icon: "Code", Enabled: true, Order: 4},
	}
}

// DefaultGlobalSettings 返回初始全局设置。
func DefaultGlobalSettings() GlobalSettings {
	return GlobalSettings{
		ThemeColor:       DefaultThemeColor,
		BaseFontSize:     DefaultBaseFontSize,
		PagePadding:      DefaultPagePadding,
		ParagraphSpacing: DefaultParagraphSpacing,
		LineHeight:       DefaultLineHeight,
		SectionSpacing:   DefaultSectionSpacing,
		HeaderSize:       DefaultHeaderSize,
		SubheaderSize:    DefaultSubheaderSize,
		UseIconMode:      false,
		CenterSubtitle:   true,
	}
}

// Options 描述创建初始简历时可覆盖的部分数据。
// Basic 与 GlobalSettings 做浅合并：调用方给出的键覆盖默认值，其余保留。
type Options struct {
	Title          string
	TemplateID     string
	Basic          *BasicInfo
	Education      []Education
	Experience     []Experience
	Projects       []Project
	SkillContent   string
	CustomData     map[string][]CustomItem
	GlobalSettings *GlobalSettingsOverride
	MenuSections   []MenuSection
}

// GlobalSettingsOverride 是工厂合并用的部分全局设置。
// 布尔字段用指针表达"未指定"，nil 时保持默认值。
type GlobalSettingsOverride struct {
	ThemeColor       string
	FontFamily       string
	BaseFontSize     int
	PagePadding      int
	ParagraphSpacing int
	LineHeight       float64
	SectionSpacing   int
	HeaderSize       int
	SubheaderSize    int
	UseIconMode      *bool
	CenterSubtitle   *bool
}

// New 构造一份填充默认值的简历文档。
// 不对调用方给出的部分数据做字段校验，仅在整体缺失时以默认值补齐。
func New(opts Options) *Document {
	now := time.Now().UTC().Format(time.RFC3339)

	doc := &Document{
		ID:             "resume-" + uuid.NewString(),
		Title:          opts.Title,
		CreatedAt:      now,
		UpdatedAt:      now,
		TemplateID:     opts.TemplateID,
		Basic:          emptyBasicInfo(),
		Education:      opts.Education,
		Experience:     opts.Experience,
		Projects:       opts.Projects,
		CustomData:     opts.CustomData,
		SkillContent:   opts.SkillContent,
		ActiveSection:  SectionBasic,
		MenuSections:   opts.MenuSections,
		GlobalSettings: DefaultGlobalSettings(),
	}

	if doc.Title == "" {
		doc.Title = "Untitled Resume"
	}
	if doc.Education == nil {
		doc.Education = []Education{}
	}
	if doc.Experience == nil {
		doc.Experience = []Experience{}
	}
	if doc.Projects == nil {
		doc.Projects = []Project{}
	}
	if doc.CustomData == nil {
		doc.CustomData = map[string][]CustomItem{}
	}
	if doc.MenuSections == nil {
		doc.MenuSections = DefaultMenuSections()
	}
	if opts.Basic != nil {
		doc.Basic = mergeBasicInfo(doc.Basic, *opts.Basic)
	}
	if opts.GlobalSettings != nil {
		doc.GlobalSettings = mergeGlobalSettings(doc.GlobalSettings, *opts.GlobalSettings)
	}

	return doc
}

func emptyBasicInfo() BasicInfo {
	return BasicInfo{
		Icons:        map[string]string{},
		PhotoConfig:  DefaultPhotoConfig(),
		Layout:       "left",
		FieldOrder:   DefaultFieldOrder(),
		CustomFields: []CustomField{},
	}
}

// mergeBasicInfo 浅合并：override 的非零字段覆盖 base。
func mergeBasicInfo(base, override BasicInfo) BasicInfo {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.Title != "" {
		out.Title = override.Title
	}
	if override.Email != "" {
		out.Email = override.Email
	}
	if override.Phone != "" {
		out.Phone = override.Phone
	}
	if override.Location != "" {
		out.Location = override.Location
	}
	if override.Website != "" {
		out.Website = override.Website
	}
	if override.BirthDate != "" {
		out.BirthDate = override.BirthDate
	}
	if override.EmploymentStatus != "" {
		out.EmploymentStatus = override.EmploymentStatus
	}
	if override.Icons != nil {
		out.Icons = override.Icons
	}
	if override.Photo != "" {
		out.Photo = override.Photo
	}
	if override.PhotoConfig != nil {
		out.PhotoConfig = override.PhotoConfig
	}
	if override.Layout != "" {
		out.Layout = override.Layout
	}
	if override.FieldOrder != nil {
		out.FieldOrder = override.FieldOrder
	}
	if override.CustomFields != nil {
		out.CustomFields = override.CustomFields
	}
	if override.Extra != nil {
		out.Extra = override.Extra
	}
	return out
}

// mergeGlobalSettings 浅合并：override 未指定的键保留默认值。
func mergeGlobalSettings(base GlobalSettings, override GlobalSettingsOverride) GlobalSettings {
	out := base
	if override.ThemeColor != "" {
		out.ThemeColor = override.ThemeColor
	}
	if override.FontFamily != "" {
		out.FontFamily = override.FontFamily
	}
	if override.BaseFontSize > 0 {
		out.BaseFontSize = override.BaseFontSize
	}
	if override.PagePadding > 0 {
		out.PagePadding = override.PagePadding
	}
	if override.ParagraphSpacing > 0 {
		out.ParagraphSpacing = override.ParagraphSpacing
	}
	if override.LineHeight > 0 {
		out.LineHeight = override.LineHeight
	}
	if override.SectionSpacing > 0 {
		out.SectionSpacing = override.SectionSpacing
	}
	if override.HeaderSize > 0 {
		out.HeaderSize = override.HeaderSize
	}
	if override.SubheaderSize > 0 {
		out.SubheaderSize = override.SubheaderSize
	}
	if override.UseIconMode != nil {
		out.UseIconMode = *override.UseIconMode
	}
	if override.CenterSubtitle != nil {
		out.CenterSubtitle = *override.CenterSubtitle
	}
	return out
}
