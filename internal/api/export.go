package api

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/baucraft/ticket-studio/internal/model"
	"github.com/baucraft/ticket-studio/internal/service/excel"
)

// ExportXlsx 把当前会话的工单导出为 xlsx 下载。
// 支持与 /api/tickets 相同的过滤参数。
// GET /api/export/xlsx
func (h *Handler) ExportXlsx(c *gin.Context) {
	company := c.Query("company")
	trade := c.Query("trade")
	taskID := c.Query("taskId")
	q := c.Query("q")

	h.mu.Lock()
	if h.session == nil {
		h.mu.Unlock()
		c.JSON(http.StatusNotFound, gin.H{"error": "没有活动的导入会话"})
		return
	}
	tickets := make([]model.TicketData, 0, len(h.session.Tickets))
	for _, t := range h.session.Tickets {
		if matchTicket(t, company, trade, taskID, q) {
			tickets = append(tickets, t)
		}
	}
	h.mu.Unlock()

	f, err := excel.ExportTickets(tickets)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "生成 Excel 失败"})
		return
	}
	defer f.Close()

	fileName := fmt.Sprintf("tickets_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))

	if err := f.Write(c.Writer); err != nil {
		// 响应头已发出，只能记录
		log.Printf("写出 Excel 失败: %v", err)
	}
}
