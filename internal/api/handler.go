package api

import (
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/baucraft/ticket-studio/internal/model"
	"github.com/baucraft/ticket-studio/internal/store"
)

// Handler API 处理器。
// 同一时刻只有一个活动导入会话，整体替换，后写覆盖前写。
type Handler struct {
	store          *store.Store
	defaultDayMode model.DayMode

	mu      sync.Mutex
	session *Session
}

// NewHandler 创建 API 处理器
func NewHandler(st *store.Store, defaultDayMode model.DayMode) *Handler {
	if !defaultDayMode.Valid() {
		defaultDayMode = model.DayModeAuto
	}
	return &Handler{
		store:          st,
		defaultDayMode: defaultDayMode,
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 数据导入
	router.POST("/import", h.Import)
	router.GET("/imports", h.ListImports)

	// 导入会话
	router.GET("/session", h.GetSession)
	router.PATCH("/session/mapping", h.UpdateMapping)
	router.PATCH("/session/daymode", h.UpdateDayMode)

	// 工单查询
	router.GET("/tickets", h.ListTickets)
	router.GET("/tickets/facets", h.GetTicketFacets)

	// 打印模板
	router.GET("/templates", h.ListTemplates)
	router.POST("/templates", h.CreateTemplate)
	router.GET("/templates/tokens", h.ListTemplateTokens)
	router.POST("/templates/render", h.RenderTemplate)
	router.GET("/templates/:id", h.GetTemplate)
	router.PUT("/templates/:id", h.UpdateTemplate)
	router.DELETE("/templates/:id", h.DeleteTemplate)

	// 数据导出
	router.GET("/export/xlsx", h.ExportXlsx)
}
