package database

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// 导出状态流转：pending -> processing -> completed / failed。
const (
	ExportStatusPending    = "pending"
	ExportStatusProcessing = "processing"
	ExportStatusCompleted  = "completed"
	ExportStatusFailed     = "failed"
)

// User 表示系统中的账号信息。
// ActiveResumeID 记录用户最近编辑的简历，便于打开即续写。
type User struct {
	gorm.Model
	Username       string   `gorm:"uniqueIndex;size:64"`
	PasswordHash   string   `gorm:"size:255"`
	ActiveResumeID *uint
	Resumes        []Resume `gorm:"constraint:OnDelete:CASCADE"`
}

// Resume 表示用户创建的简历文档。
// Content 以 JSONB 存储完整文档（基本信息、分区、全局设置）。
type Resume struct {
	gorm.Model
	Title        string         `gorm:"size:255"`
	Content      datatypes.JSON `gorm:"type:jsonb"`
	UserID       uint           `gorm:"index"`
	User         User           `gorm:"constraint:OnDelete:CASCADE"`
	TemplateID   string         `gorm:"size:32;default:classic"` // 最近一次导出使用的模板
	PdfKey       string         `gorm:"size:512"`                // 对象存储中的 PDF key
	ExportStatus string         `gorm:"size:32"`
}
