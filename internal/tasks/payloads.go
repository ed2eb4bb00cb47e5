package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// 任务类型常量，确保队列生产者与消费者一致。
const (
	TypeResumeExport = "resume:export"
)

// ResumeExportPayload 描述导出 PDF 所需的最小信息。
type ResumeExportPayload struct {
	ResumeID      uint   `json:"resume_id"`
	TemplateID    string `json:"template_id"`
	CorrelationID string `json:"correlation_id"`
}

// NewResumeExportTask 构造一个新的简历导出任务。
func NewResumeExportTask(id uint, templateID, correlationID string) (*asynq.Task, error) {
	payload, err := json.Marshal(ResumeExportPayload{
		ResumeID:      id,
		TemplateID:    templateID,
		CorrelationID: correlationID,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeResumeExport, payload), nil
}
