package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumekit/internal/render"
)

// TemplateHandler 暴露内置布局列表。
type TemplateHandler struct{}

// NewTemplateHandler 构造模板处理器。
func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{}
}

// ListTemplates 返回全部内置布局及其说明。
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, render.Templates())
}
