package render

import "strings"

// TemplateID 标识整页布局策略。
type TemplateID string

const (
	TemplateClassic   TemplateID = "classic"
	TemplateModern    TemplateID = "modern"
	TemplateLeftRight TemplateID = "left-right"
	TemplateTimeline  TemplateID = "timeline"
)

// TemplateInfo 描述一个内置布局，供模板列表接口使用。
type TemplateInfo struct {
	ID          TemplateID `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
}

// Templates 返回全部内置布局，顺序固定。
func Templates() []TemplateInfo {
	return []TemplateInfo{
		{ID: TemplateClassic, Name: "经典", Description: "单列布局，分区标题带下划线"},
		{ID: TemplateModern, Name: "现代", Description: "主题色侧栏放基本信息，右侧双栏内容"},
		{ID: TemplateLeftRight, Name: "左右", Description: "单列布局，分区标题带左侧色条"},
		{ID: TemplateTimeline, Name: "时间轴", Description: "分区沿时间轴排列，节点用主题色标记"},
	}
}

// ParseTemplateID 规范化外部传入的布局 id。
// 未知值不报错，统一回落到 classic。
func ParseTemplateID(s string) TemplateID {
	switch TemplateID(strings.TrimSpace(s)) {
	case TemplateModern:
		return TemplateModern
	case TemplateLeftRight:
		return TemplateLeftRight
	case TemplateTimeline:
		return TemplateTimeline
	default:
		return TemplateClassic
	}
}
