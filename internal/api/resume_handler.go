package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"resumekit/internal/api/middleware"
	"resumekit/internal/database"
	"resumekit/internal/metrics"
	"resumekit/internal/render"
	"resumekit/internal/resume"
	"resumekit/internal/storage"
	"resumekit/internal/tasks"
)

// ResumeHandler 负责处理与简历相关的 API 请求。
type ResumeHandler struct {
	db              *gorm.DB
	asynqClient     *asynq.Client
	storage         *storage.Client
	maxResumes      int
	downloadLinkTTL time.Duration
	exportMaxRetry  int
}

// ResumeHandlerOptions 聚合简历处理器的可调参数。
type ResumeHandlerOptions struct {
	MaxResumes      int
	DownloadLinkTTL time.Duration
	ExportMaxRetry  int
}

// NewResumeHandler 构造 ResumeHandler。
func NewResumeHandler(db *gorm.DB, asynqClient *asynq.Client, storageClient *storage.Client, opts ResumeHandlerOptions) *ResumeHandler {
	if opts.DownloadLinkTTL <= 0 {
		opts.DownloadLinkTTL = 5 * time.Minute
	}
	if opts.ExportMaxRetry <= 0 {
		opts.ExportMaxRetry = 5
	}
	return &ResumeHandler{
		db:              db,
		asynqClient:     asynqClient,
		storage:         storageClient,
		maxResumes:      opts.MaxResumes,
		downloadLinkTTL: opts.DownloadLinkTTL,
		exportMaxRetry:  opts.ExportMaxRetry,
	}
}

var errInvalidResumeID = errors.New("invalid resume id")

type createResumeRequest struct {
	Title   string         `json:"title"`
	Content datatypes.JSON `json:"content"`
}

type resumeListItem struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	ExportStatus string    `json:"export_status,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type resumeResponse struct {
	ID           uint           `json:"id"`
	Title        string         `json:"title"`
	Content      datatypes.JSON `json:"content"`
	TemplateID   string         `json:"template_id,omitempty"`
	ExportStatus string         `json:"export_status,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// decodeDocument 把 JSONB 内容解析为文档结构。
// 渲染器本身对缺失字段全部宽容，这里只拦截完全无法解析的 JSON。
func decodeDocument(content datatypes.JSON) (*resume.Document, error) {
	var doc resume.Document
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("decode resume document: %w", err)
	}
	return &doc, nil
}

// normalizeContent 为缺省请求生成完整的初始文档。
// 请求给了 content 时原样保存，标题与文档内标题保持一致。
func normalizeContent(req createResumeRequest) (string, datatypes.JSON, error) {
	if len(req.Content) == 0 {
		doc := resume.New(resume.Options{Title: req.Title})
		data, err := json.Marshal(doc)
		if err != nil {
			return "", nil, fmt.Errorf("marshal initial document: %w", err)
		}
		return doc.Title, datatypes.JSON(data), nil
	}

	if _, err := decodeDocument(req.Content); err != nil {
		return "", nil, err
	}
	title := req.Title
	if title == "" {
		title = "Untitled Resume"
	}
	return title, req.Content, nil
}

// CreateResume 保存一份新的简历，超过限额则提示升级。
// 未提供 content 时落库一份带默认分区与设置的初始文档。
func (h *ResumeHandler) CreateResume(c *gin.Context) {
	var req createResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	ctx := c.Request.Context()

	var count int64
	if err := h.db.WithContext(ctx).
		Model(&database.Resume{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		Internal(c, "failed to count resumes")
		return
	}

	if h.maxResumes > 0 && count >= int64(h.maxResumes) {
		Forbidden(c, "resume limit reached")
		return
	}

	title, content, err := normalizeContent(req)
	if err != nil {
		BadRequest(c, "content is not a valid resume document")
		return
	}

	record := database.Resume{
		Title:   title,
		Content: content,
		UserID:  userID,
	}

	if err := h.db.WithContext(ctx).Create(&record).Error; err != nil {
		Internal(c, "failed to create resume")
		return
	}

	if err := h.setActiveResumeID(ctx, userID, &record.ID); err != nil {
		Internal(c, "failed to mark active resume")
		return
	}

	c.JSON(http.StatusCreated, newResumeResponse(record))
}

// GetLatestResume 返回用户最近编辑的简历；一份都没有时返回初始文档。
func (h *ResumeHandler) GetLatestResume(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	ctx := c.Request.Context()
	record, err := h.findActiveOrLatestResume(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			doc := resume.New(resume.Options{})
			data, merr := json.Marshal(doc)
			if merr != nil {
				Internal(c, "failed to build initial document")
				return
			}
			c.JSON(http.StatusOK, resumeResponse{
				ID:      0,
				Title:   doc.Title,
				Content: datatypes.JSON(data),
			})
			return
		}
		Internal(c, "failed to query latest resume")
		return
	}

	c.JSON(http.StatusOK, newResumeResponse(*record))
}

// ListResumes 列出用户全部简历。
func (h *ResumeHandler) ListResumes(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	ctx := c.Request.Context()
	var records []database.Resume
	if err := h.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&records).Error; err != nil {
		Internal(c, "failed to list resumes")
		return
	}

	items := make([]resumeListItem, 0, len(records))
	for _, r := range records {
		items = append(items, resumeListItem{
			ID:           r.ID,
			Title:        r.Title,
			ExportStatus: r.ExportStatus,
			CreatedAt:    r.CreatedAt,
			UpdatedAt:    r.UpdatedAt,
		})
	}

	c.JSON(http.StatusOK, items)
}

// GetResume 返回指定 ID 的简历并标记为当前正在编辑。
func (h *ResumeHandler) GetResume(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	record, err := h.getResumeForUser(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		h.replyResumeLookupError(c, err)
		return
	}

	if err := h.setActiveResumeID(c.Request.Context(), userID, &record.ID); err != nil {
		Internal(c, "failed to mark active resume")
		return
	}

	c.JSON(http.StatusOK, newResumeResponse(*record))
}

// UpdateResume 覆盖指定简历。
func (h *ResumeHandler) UpdateResume(c *gin.Context) {
	var req createResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	if len(req.Content) == 0 {
		BadRequest(c, "content is required")
		return
	}
	if _, err := decodeDocument(req.Content); err != nil {
		BadRequest(c, "content is not a valid resume document")
		return
	}

	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	record, err := h.getResumeForUser(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		h.replyResumeLookupError(c, err)
		return
	}

	title := req.Title
	if title == "" {
		title = record.Title
	}
	updates := map[string]any{
		"title":   title,
		"content": req.Content,
	}

	ctx := c.Request.Context()
	if err := h.db.WithContext(ctx).Model(record).Updates(updates).Error; err != nil {
		Internal(c, "failed to update resume")
		return
	}

	if err := h.db.WithContext(ctx).First(record, record.ID).Error; err != nil {
		Internal(c, "failed to reload resume")
		return
	}

	if err := h.setActiveResumeID(ctx, userID, &record.ID); err != nil {
		Internal(c, "failed to mark active resume")
		return
	}

	c.JSON(http.StatusOK, newResumeResponse(*record))
}

// DeleteResume 删除指定简历及其导出产物，并尝试回落到最近一份。
func (h *ResumeHandler) DeleteResume(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	record, err := h.getResumeForUser(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		h.replyResumeLookupError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.db.WithContext(ctx).Delete(&database.Resume{}, record.ID).Error; err != nil {
		Internal(c, "failed to delete resume")
		return
	}

	if h.storage != nil && record.PdfKey != "" {
		// 导出产物清理失败不阻塞删除，对象会随前缀清理兜底。
		_ = h.storage.DeleteObject(ctx, record.PdfKey)
	}

	if err := h.assignLatestResumeAsActive(ctx, userID); err != nil {
		Internal(c, "failed to update active resume")
		return
	}

	c.Status(http.StatusNoContent)
}

// PreviewResume 渲染整页 HTML 预览，布局由 template 查询参数决定。
func (h *ResumeHandler) PreviewResume(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	record, err := h.getResumeForUser(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		h.replyResumeLookupError(c, err)
		return
	}

	doc, err := decodeDocument(record.Content)
	if err != nil {
		Internal(c, "stored resume content is corrupted")
		return
	}

	templateID := render.ParseTemplateID(c.Query("template"))
	start := time.Now()
	html := render.Page(doc, templateID)
	metrics.ObserveRender(string(templateID), time.Since(start))

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, html)
}

type exportResumeRequest struct {
	TemplateID string `json:"template_id"`
}

// ExportResume 将 PDF 导出任务入队并立即返回 202。
func (h *ResumeHandler) ExportResume(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	record, err := h.getResumeForUser(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		h.replyResumeLookupError(c, err)
		return
	}

	var req exportResumeRequest
	// body 可省略，此时沿用记录上的模板。
	_ = c.ShouldBindJSON(&req)
	templateID := render.ParseTemplateID(req.TemplateID)
	if req.TemplateID == "" && record.TemplateID != "" {
		templateID = render.ParseTemplateID(record.TemplateID)
	}

	ctx := c.Request.Context()
	if err := h.db.WithContext(ctx).Model(record).Updates(map[string]any{
		"template_id":   string(templateID),
		"export_status": database.ExportStatusPending,
	}).Error; err != nil {
		Internal(c, "failed to mark resume for export")
		return
	}

	correlationID := middleware.GetCorrelationID(c)
	task, err := tasks.NewResumeExportTask(record.ID, string(templateID), correlationID)
	if err != nil {
		Internal(c, "failed to create task")
		return
	}

	info, err := h.asynqClient.Enqueue(task, asynq.MaxRetry(h.exportMaxRetry))
	if err != nil {
		Internal(c, "failed to enqueue pdf export")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message":  "PDF export request accepted",
		"task_id":  info.ID,
		"template": string(templateID),
	})
}

// GetDownloadLink 生成简历 PDF 的预签名下载链接。
func (h *ResumeHandler) GetDownloadLink(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	record, err := h.getResumeForUser(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		h.replyResumeLookupError(c, err)
		return
	}

	if record.PdfKey == "" || record.ExportStatus != database.ExportStatusCompleted {
		Conflict(c, "pdf not ready")
		return
	}

	signedURL, err := h.storage.GeneratePresignedURL(c.Request.Context(), record.PdfKey, h.downloadLinkTTL)
	if err != nil {
		Internal(c, "failed to generate download link")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": signedURL})
}

func (h *ResumeHandler) replyResumeLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errInvalidResumeID):
		BadRequest(c, "invalid resume id")
	case errors.Is(err, gorm.ErrRecordNotFound):
		NotFound(c, "resume not found")
	default:
		Internal(c, "failed to query resume")
	}
}

func (h *ResumeHandler) setActiveResumeID(ctx context.Context, userID uint, resumeID *uint) error {
	var value any
	if resumeID != nil {
		value = *resumeID
	}
	return h.db.WithContext(ctx).Model(&database.User{}).
		Where("id = ?", userID).
		Update("active_resume_id", value).Error
}

func (h *ResumeHandler) assignLatestResumeAsActive(ctx context.Context, userID uint) error {
	var record database.Resume
	err := h.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at desc").
		First(&record).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return h.setActiveResumeID(ctx, userID, nil)
	case err != nil:
		return err
	default:
		return h.setActiveResumeID(ctx, userID, &record.ID)
	}
}

func (h *ResumeHandler) findActiveOrLatestResume(ctx context.Context, userID uint) (*database.Resume, error) {
	var user database.User
	if err := h.db.WithContext(ctx).
		Select("id", "active_resume_id").
		First(&user, userID).Error; err != nil {
		return nil, err
	}

	if user.ActiveResumeID != nil {
		var record database.Resume
		err := h.db.WithContext(ctx).
			Where("id = ? AND user_id = ?", *user.ActiveResumeID, userID).
			First(&record).Error
		if err == nil {
			return &record, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	var latest database.Resume
	err := h.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at desc").
		First(&latest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = h.setActiveResumeID(ctx, userID, nil)
		}
		return nil, err
	}

	if err := h.setActiveResumeID(ctx, userID, &latest.ID); err != nil {
		return nil, err
	}
	return &latest, nil
}

func (h *ResumeHandler) getResumeForUser(ctx context.Context, idParam string, userID uint) (*database.Resume, error) {
	resumeID, err := strconv.ParseUint(idParam, 10, 64)
	if err != nil {
		return nil, errInvalidResumeID
	}

	var record database.Resume
	if err := h.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", uint(resumeID), userID).
		First(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func userIDFromContext(c *gin.Context) (uint, bool) {
	value, exists := c.Get("userID")
	if !exists {
		return 0, false
	}

	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint(v), true
	case uint64:
		return uint(v), true
	case int64:
		if v < 0 {
			return 0, false
		}
		return uint(v), true
	default:
		return 0, false
	}
}

func newResumeResponse(record database.Resume) resumeResponse {
	return resumeResponse{
		ID:           record.ID,
		Title:        record.Title,
		Content:      record.Content,
		TemplateID:   record.TemplateID,
		ExportStatus: record.ExportStatus,
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}
}
