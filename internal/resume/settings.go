package resume

// 渲染用的统一默认值。所有渲染器只消费 ResolvedSettings，
// 避免各组件各自硬编码回退值产生漂移。
const (
	DefaultThemeColor       = "#000000"
	DefaultBaseFontSize     = 14
	DefaultLineHeight       = 1.6
	DefaultSectionSpacing   = 24
	DefaultParagraphSpacing = 8
	DefaultHeaderSize       = 18
	DefaultSubheaderSize    = 16
	DefaultPagePadding      = 32
)

// ResolvedSettings 是填充完默认值的全局设置，渲染期间不再做任何回退判断。
type ResolvedSettings struct {
	ThemeColor       string
	FontFamily       string
	BaseFontSize     int
	PagePadding      int
	ParagraphSpacing int
	LineHeight       float64
	SectionSpacing   int
	HeaderSize       int
	SubheaderSize    int
	UseIconMode      bool
	CenterSubtitle   bool
}

// ResolveSettings 把可能残缺的 GlobalSettings 解析为完整设置。
// 缺省（零值）字段取命名默认值；FontFamily 为空表示使用宿主默认字体。
func ResolveSettings(gs GlobalSettings) ResolvedSettings {
	r := ResolvedSettings{
		ThemeColor:       gs.ThemeColor,
		FontFamily:       gs.FontFamily,
		BaseFontSize:     gs.BaseFontSize,
		PagePadding:      gs.PagePadding,
		ParagraphSpacing: gs.ParagraphSpacing,
		LineHeight:       gs.LineHeight,
		SectionSpacing:   gs.SectionSpacing,
		HeaderSize:       gs.HeaderSize,
		SubheaderSize:    gs.SubheaderSize,
		UseIconMode:      gs.UseIconMode,
		CenterSubtitle:   gs.CenterSubtitle,
	}
	if r.ThemeColor == "" {
		r.ThemeColor = DefaultThemeColor
	}
	if r.BaseFontSize <= 0 {
		r.BaseFontSize = DefaultBaseFontSize
	}
	if r.PagePadding <= 0 {
		r.PagePadding = DefaultPagePadding
	}
	if r.ParagraphSpacing <= 0 {
		r.ParagraphSpacing = DefaultParagraphSpacing
	}
	if r.LineHeight <= 0 {
		r.LineHeight = DefaultLineHeight
	}
	if r.SectionSpacing <= 0 {
		r.SectionSpacing = DefaultSectionSpacing
	}
	if r.HeaderSize <= 0 {
		r.HeaderSize = DefaultHeaderSize
	}
	if r.SubheaderSize <= 0 {
		r.SubheaderSize = DefaultSubheaderSize
	}
	return r
}
