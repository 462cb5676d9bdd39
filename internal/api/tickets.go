package api

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/baucraft/ticket-studio/internal/model"
)

// matchTicket 按查询参数过滤单张工单。
// company/trade/taskId 为精确匹配，q 为不区分大小写的子串搜索。
func matchTicket(t model.TicketData, company, trade, taskID, q string) bool {
	if company != "" && t.Company != company {
		return false
	}
	if trade != "" && t.Trade != trade {
		return false
	}
	if taskID != "" && t.TaskID != taskID {
		return false
	}
	if q != "" {
		needle := strings.ToLower(q)
		hay := strings.ToLower(strings.Join([]string{
			t.TicketID, t.TaskID, t.TaskName, t.Company, t.Trade, t.Description, t.Status,
		}, "\n"))
		if !strings.Contains(hay, needle) {
			return false
		}
	}
	return true
}

// ListTickets 当前会话的工单列表，支持过滤和搜索
// GET /api/tickets?company=&trade=&taskId=&q=
func (h *Handler) ListTickets(c *gin.Context) {
	company := c.Query("company")
	trade := c.Query("trade")
	taskID := c.Query("taskId")
	q := c.Query("q")

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "没有活动的导入会话"})
		return
	}

	matched := make([]model.TicketData, 0, len(h.session.Tickets))
	for _, t := range h.session.Tickets {
		if matchTicket(t, company, trade, taskID, q) {
			matched = append(matched, t)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"total":   len(h.session.Tickets),
		"matched": len(matched),
		"tickets": matched,
	})
}

// FacetsResponse 工单维度取值，用于前端过滤器
type FacetsResponse struct {
	Companies []string `json:"companies"`
	Trades    []string `json:"trades"`
	Tasks     []string `json:"tasks"`
	Dates     []string `json:"dates"`
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// GetTicketFacets 当前会话工单的去重维度值
// GET /api/tickets/facets
func (h *Handler) GetTicketFacets(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "没有活动的导入会话"})
		return
	}

	companies := map[string]struct{}{}
	trades := map[string]struct{}{}
	tasks := map[string]struct{}{}
	dates := map[string]struct{}{}
	for _, t := range h.session.Tickets {
		if t.Company != "" {
			companies[t.Company] = struct{}{}
		}
		if t.Trade != "" {
			trades[t.Trade] = struct{}{}
		}
		if t.TaskID != "" {
			tasks[t.TaskID] = struct{}{}
		}
		if t.Date != "" {
			dates[t.Date] = struct{}{}
		}
	}

	c.JSON(http.StatusOK, FacetsResponse{
		Companies: sortedKeys(companies),
		Trades:    sortedKeys(trades),
		Tasks:     sortedKeys(tasks),
		Dates:     sortedKeys(dates),
	})
}
