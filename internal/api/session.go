package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/baucraft/ticket-studio/internal/importer"
	"github.com/baucraft/ticket-studio/internal/model"
)

// Session 当前导入会话：一次上传的表格、映射与展开结果。
// 重新导入时整体替换。
type Session struct {
	BatchID string              `json:"batchId"`
	Table   model.ImportTable   `json:"table"`
	Mapping model.ColumnMapping `json:"mapping"`
	DayMode model.DayMode       `json:"dayMode"`
	Tickets []model.TicketData  `json:"tickets"`
}

// SessionResponse 会话响应，表格只回行数不回整表
type SessionResponse struct {
	BatchID     string                 `json:"batchId"`
	FileName    string                 `json:"fileName"`
	SourceKind  model.ImportSourceKind `json:"sourceKind"`
	Headers     []string               `json:"headers"`
	RowCount    int                    `json:"rowCount"`
	Mapping     model.ColumnMapping    `json:"mapping"`
	DayMode     model.DayMode          `json:"dayMode"`
	TicketCount int                    `json:"ticketCount"`
	Tickets     []model.TicketData     `json:"tickets"`
}

// rebuild 按当前映射和模式重新物化工单
func (s *Session) rebuild() {
	s.Tickets = importer.Materialize(s.Table, s.Mapping, s.DayMode)
}

func sessionResponse(s *Session) SessionResponse {
	return SessionResponse{
		BatchID:     s.BatchID,
		FileName:    s.Table.FileName,
		SourceKind:  s.Table.SourceKind,
		Headers:     s.Table.Headers,
		RowCount:    len(s.Table.Rows),
		Mapping:     s.Mapping,
		DayMode:     s.DayMode,
		TicketCount: len(s.Tickets),
		Tickets:     s.Tickets,
	}
}

// GetSession 获取当前会话
// GET /api/session
func (h *Handler) GetSession(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "没有活动的导入会话"})
		return
	}
	c.JSON(http.StatusOK, sessionResponse(h.session))
}

// UpdateMapping 整体替换列映射并重建工单。
// 映射值是表头名，不存在的表头在物化时按空值处理，不报错。
// PATCH /api/session/mapping
func (h *Handler) UpdateMapping(c *gin.Context) {
	var mapping model.ColumnMapping
	if err := c.ShouldBindJSON(&mapping); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的映射数据"})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "没有活动的导入会话"})
		return
	}

	h.session.Mapping = mapping
	h.session.rebuild()
	c.JSON(http.StatusOK, sessionResponse(h.session))
}

// DayModeRequest 展开模式修改请求
type DayModeRequest struct {
	DayMode model.DayMode `json:"dayMode"`
}

// UpdateDayMode 修改区间展开模式并重建工单
// PATCH /api/session/daymode
func (h *Handler) UpdateDayMode(c *gin.Context) {
	var req DayModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求数据"})
		return
	}
	if !req.DayMode.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未知的展开模式: " + string(req.DayMode)})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "没有活动的导入会话"})
		return
	}

	h.session.DayMode = req.DayMode
	h.session.rebuild()
	c.JSON(http.StatusOK, sessionResponse(h.session))
}
