package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/baucraft/ticket-studio/internal/model"
)

// Version 当前版本号
const Version = "1.0.0"

// StatusResponse 系统状态响应
type StatusResponse struct {
	Version        string                 `json:"version"`
	HasSession     bool                   `json:"hasSession"`
	FileName       string                 `json:"fileName,omitempty"`
	SourceKind     model.ImportSourceKind `json:"sourceKind,omitempty"`
	TicketCount    int                    `json:"ticketCount"`
	TemplateCount  int                    `json:"templateCount"`
	DefaultDayMode model.DayMode          `json:"defaultDayMode"`
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	resp := StatusResponse{
		Version:        Version,
		DefaultDayMode: h.defaultDayMode,
	}

	if templates, err := h.store.ListTemplates(); err == nil {
		resp.TemplateCount = len(templates)
	}

	h.mu.Lock()
	if h.session != nil {
		resp.HasSession = true
		resp.FileName = h.session.Table.FileName
		resp.SourceKind = h.session.Table.SourceKind
		resp.TicketCount = len(h.session.Tickets)
	}
	h.mu.Unlock()

	c.JSON(http.StatusOK, resp)
}
