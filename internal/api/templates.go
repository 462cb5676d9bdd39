package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/baucraft/ticket-studio/internal/model"
	"github.com/baucraft/ticket-studio/internal/store"
	"github.com/baucraft/ticket-studio/internal/template"
)

// ListTemplates 列出全部打印模板
// GET /api/templates
func (h *Handler) ListTemplates(c *gin.Context) {
	templates, err := h.store.ListTemplates()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询模板失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

// GetTemplate 按 ID 取模板
// GET /api/templates/:id
func (h *Handler) GetTemplate(c *gin.Context) {
	tpl, err := h.store.GetTemplate(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "模板不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询模板失败"})
		return
	}
	c.JSON(http.StatusOK, tpl)
}

func validateTemplate(t model.TicketTemplate) string {
	if strings.TrimSpace(t.Name) == "" {
		return "模板名称不能为空"
	}
	if t.WidthMm <= 0 || t.HeightMm <= 0 {
		return "模板尺寸必须为正数"
	}
	if strings.TrimSpace(t.SVG) == "" {
		return "模板内容不能为空"
	}
	return ""
}

// CreateTemplate 新建模板，ID 缺省时自动生成
// POST /api/templates
func (h *Handler) CreateTemplate(c *gin.Context) {
	var tpl model.TicketTemplate
	if err := c.ShouldBindJSON(&tpl); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的模板数据"})
		return
	}
	if msg := validateTemplate(tpl); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	if tpl.ID == "" {
		tpl.ID = uuid.New().String()
	}

	if err := h.store.SaveTemplate(tpl); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存模板失败"})
		return
	}

	saved, err := h.store.GetTemplate(tpl.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存模板失败"})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// UpdateTemplate 整体覆盖模板
// PUT /api/templates/:id
func (h *Handler) UpdateTemplate(c *gin.Context) {
	var tpl model.TicketTemplate
	if err := c.ShouldBindJSON(&tpl); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的模板数据"})
		return
	}
	tpl.ID = c.Param("id")
	if msg := validateTemplate(tpl); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if _, err := h.store.GetTemplate(tpl.ID); err != nil {
		if errors.Is(err, store.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "模板不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询模板失败"})
		return
	}

	if err := h.store.SaveTemplate(tpl); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存模板失败"})
		return
	}

	saved, err := h.store.GetTemplate(tpl.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存模板失败"})
		return
	}
	c.JSON(http.StatusOK, saved)
}

// DeleteTemplate 删除模板
// DELETE /api/templates/:id
func (h *Handler) DeleteTemplate(c *gin.Context) {
	if err := h.store.DeleteTemplate(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "模板不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "删除模板失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ListTemplateTokens 模板可用占位符清单
// GET /api/templates/tokens
func (h *Handler) ListTemplateTokens(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tokens": template.Tokens()})
}

// RenderRequest 模板渲染请求。
// Template 与 TemplateID 二选一，同时给出时以 Template 为准。
type RenderRequest struct {
	Template   string           `json:"template"`
	TemplateID string           `json:"templateId"`
	Ticket     model.TicketData `json:"ticket"`
}

// RenderTemplate 用一张工单渲染模板字符串
// POST /api/templates/render
func (h *Handler) RenderTemplate(c *gin.Context) {
	var req RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的渲染请求"})
		return
	}

	tmpl := req.Template
	if tmpl == "" && req.TemplateID != "" {
		tpl, err := h.store.GetTemplate(req.TemplateID)
		if err != nil {
			if errors.Is(err, store.ErrTemplateNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "模板不存在"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "查询模板失败"})
			return
		}
		tmpl = tpl.SVG
	}
	if tmpl == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少模板内容"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rendered": template.Render(tmpl, req.Ticket)})
}
