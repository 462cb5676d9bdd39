package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/baucraft/ticket-studio/internal/importer"
	"github.com/baucraft/ticket-studio/internal/model"
	"github.com/baucraft/ticket-studio/internal/service/excel"
)

// Import 导入 Excel 表格并建立新会话
// POST /api/import
func (h *Handler) Import(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的表单数据"})
		return
	}

	files := form.File["file"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未找到上传文件"})
		return
	}
	uploaded := files[0]

	dayMode := h.defaultDayMode
	if v := c.PostForm("dayMode"); v != "" {
		m := model.DayMode(v)
		if !m.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "未知的展开模式: " + v})
			return
		}
		dayMode = m
	}

	f, err := uploaded.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取上传文件失败"})
		return
	}
	defer f.Close()

	table, err := excel.ReadTable(uploaded.Filename, f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "解析 Excel 失败: " + err.Error()})
		return
	}

	session := &Session{
		BatchID: uuid.New().String(),
		Table:   table,
		Mapping: importer.SuggestMapping(table),
		DayMode: dayMode,
	}
	session.rebuild()

	h.mu.Lock()
	h.session = session
	h.mu.Unlock()

	if _, err := h.store.CreateImportLog(model.ImportRecord{
		BatchID:     session.BatchID,
		FileName:    table.FileName,
		SourceKind:  table.SourceKind,
		RowCount:    len(table.Rows),
		TicketCount: len(session.Tickets),
		DayMode:     session.DayMode,
	}); err != nil {
		// 日志写入失败不影响导入结果
		log.Printf("写入导入日志失败: %v", err)
	}

	c.JSON(http.StatusOK, sessionResponse(session))
}

// ListImports 导入日志，最近的在前
// GET /api/imports
func (h *Handler) ListImports(c *gin.Context) {
	logs, err := h.store.ListImportLogs(0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询导入日志失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"imports": logs})
}
