package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"resumekit/internal/database"
	"resumekit/internal/errcode"
	"resumekit/internal/metrics"
	"resumekit/internal/pdf"
	"resumekit/internal/render"
	"resumekit/internal/resume"
	"resumekit/internal/storage"
	"resumekit/internal/tasks"
)

// ExportTaskHandler 负责消费简历导出任务：
// 读取文档、在进程内渲染整页 HTML、打印为 PDF 并上传到对象存储。
type ExportTaskHandler struct {
	db          *gorm.DB
	storage     *storage.Client
	redisClient *redis.Client
	logger      *slog.Logger
}

// NewExportTaskHandler 创建任务处理器。
func NewExportTaskHandler(
	db *gorm.DB,
	storageClient *storage.Client,
	redisClient *redis.Client,
	logger *slog.Logger,
) *ExportTaskHandler {
	return &ExportTaskHandler{
		db:          db,
		storage:     storageClient,
		redisClient: redisClient,
		logger:      logger,
	}
}

// ProcessTask 实现 asynq.Handler。
func (h *ExportTaskHandler) ProcessTask(ctx context.Context, t *asynq.Task) (retErr error) {
	log := h.logger

	var payload tasks.ResumeExportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Error("unmarshal task payload failed", slog.Any("error", err))
		return err
	}

	log = log.With(
		slog.String("correlation_id", payload.CorrelationID),
		slog.Int("resume_id", int(payload.ResumeID)),
		slog.String("template_id", payload.TemplateID),
	)
	log.Info("starting resume export task")

	var record database.Resume
	if err := h.db.WithContext(ctx).First(&record, payload.ResumeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("resume not found, skipping task")
			return nil
		}
		log.Error("query resume failed", slog.Any("error", err))
		return err
	}

	log = log.With(slog.Uint64("user_id", uint64(record.UserID)))

	templateID := render.ParseTemplateID(payload.TemplateID)

	defer func() {
		if retErr == nil {
			return
		}
		if !isFinalAsynqAttempt(ctx) {
			return
		}

		_ = h.db.WithContext(ctx).Model(&record).
			Update("export_status", database.ExportStatusFailed).Error

		notify := ExportNotifyMessage{
			Status:        "error",
			ResumeID:      record.ID,
			TemplateID:    string(templateID),
			CorrelationID: payload.CorrelationID,
			ErrorCode:     errcode.SystemError,
			ErrorMessage:  strings.TrimSpace(retErr.Error()),
		}
		if err := h.publishExportNotify(ctx, record.UserID, notify); err != nil {
			log.Error("publish export error notification failed", slog.Any("error", err))
		}
	}()

	if err := h.db.WithContext(ctx).Model(&record).
		Update("export_status", database.ExportStatusProcessing).Error; err != nil {
		log.Error("mark resume processing failed", slog.Any("error", err))
		return err
	}

	var doc resume.Document
	if err := json.Unmarshal(record.Content, &doc); err != nil {
		// 内容损坏属于不可重试错误，直接通知失败。
		log.Error("decode resume content failed", slog.Any("error", err))
		_ = h.db.WithContext(ctx).Model(&record).
			Update("export_status", database.ExportStatusFailed).Error
		notify := ExportNotifyMessage{
			Status:        "error",
			ResumeID:      record.ID,
			TemplateID:    string(templateID),
			CorrelationID: payload.CorrelationID,
			ErrorCode:     errcode.InvalidDocument,
			ErrorMessage:  "简历内容无法解析",
		}
		if perr := h.publishExportNotify(ctx, record.UserID, notify); perr != nil {
			log.Error("publish invalid document notification failed", slog.Any("error", perr))
		}
		return nil
	}

	start := time.Now()
	html := render.Page(&doc, templateID)
	metrics.ObserveRender(string(templateID), time.Since(start))

	pdfBytes, err := pdf.GeneratePDFFromHTML(ctx, html)
	if err != nil {
		log.Error("generate pdf failed", slog.Any("error", err))
		return err
	}

	objectName := fmt.Sprintf("generated-resumes/%d/%s.pdf", record.UserID, uuid.NewString())
	pdfReader := bytes.NewReader(pdfBytes)
	if _, err := h.storage.UploadFile(ctx, objectName, pdfReader, int64(len(pdfBytes)), "application/pdf"); err != nil {
		log.Error("upload pdf to minio failed", slog.Any("error", err))
		return err
	}

	previousKey := record.PdfKey
	update := map[string]any{
		"pdf_key":       objectName,
		"template_id":   string(templateID),
		"export_status": database.ExportStatusCompleted,
	}
	if err := h.db.WithContext(ctx).Model(&record).Updates(update).Error; err != nil {
		log.Error("update resume failed", slog.Any("error", err))
		return err
	}

	// 旧产物异步清理失败只记日志，不影响任务结果。
	if previousKey != "" && previousKey != objectName {
		if err := h.storage.DeleteObject(ctx, previousKey); err != nil {
			log.Warn("delete stale pdf failed", slog.String("key", previousKey), slog.Any("error", err))
		}
	}

	notify := ExportNotifyMessage{
		Status:        "completed",
		ResumeID:      record.ID,
		TemplateID:    string(templateID),
		PdfKey:        objectName,
		CorrelationID: payload.CorrelationID,
		ErrorCode:     errcode.OK,
	}
	if err := h.publishExportNotify(ctx, record.UserID, notify); err != nil {
		log.Error("publish redis notification failed", slog.Any("error", err))
		return err
	}

	log.Info("resume export task completed")
	return nil
}

func (h *ExportTaskHandler) publishExportNotify(ctx context.Context, userID uint, notify ExportNotifyMessage) error {
	data, err := json.Marshal(notify)
	if err != nil {
		return fmt.Errorf("marshal notification payload: %w", err)
	}
	channel := fmt.Sprintf("user_notify:%d", userID)
	if err := h.redisClient.Publish(ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("publish redis notification to %q: %w", channel, err)
	}
	return nil
}

// isFinalAsynqAttempt 判断当前是否为最后一次重试，用于决定是否发失败通知。
func isFinalAsynqAttempt(ctx context.Context) bool {
	retried, ok := asynq.GetRetryCount(ctx)
	if !ok {
		return true
	}
	maxRetry, ok := asynq.GetMaxRetry(ctx)
	if !ok {
		return true
	}
	return retried >= maxRetry
}
