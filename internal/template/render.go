package template

import (
	"regexp"

	"github.com/cbroglie/mustache"

	"github.com/baucraft/ticket-studio/internal/model"
)

// DefaultTradeColor 工单未提供颜色时的默认填充色（淡紫）
const DefaultTradeColor = "#cbbfd7"

// varTagRe 普通变量标签 {{key}}，含点号路径
var varTagRe = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_.]+)\s*\}\}`)

// disableEscaping 把普通变量标签改写成非转义形式 {{&key}}。
// 渲染结果用于纯文本和 SVG 属性，HTML 转义会把 & 变成 &amp;。
// 模板里不要使用三花括号写法，会和这里的改写冲突。
func disableEscaping(tmpl string) string {
	return varTagRe.ReplaceAllString(tmpl, "{{&$1}}")
}

// Render 用工单数据渲染模板字符串。
// 解析或渲染失败时原样返回模板，不报错。
func Render(tmpl string, ticket model.TicketData) string {
	parsed, err := mustache.ParseString(disableEscaping(tmpl))
	if err != nil {
		return tmpl
	}
	out, err := parsed.Render(viewOf(ticket))
	if err != nil {
		return tmpl
	}
	return out
}

// viewOf 工单的渲染视图。tradeColor 兜底为默认色，
// 保证 fill="{{tradeColor}}" 始终是合法的 SVG 属性值。
func viewOf(ticket model.TicketData) map[string]interface{} {
	color := ticket.TradeColor
	if color == "" {
		color = DefaultTradeColor
	}

	area := map[string]string{}
	if ticket.Area != nil {
		area["level1"] = ticket.Area.Level1
		area["level2"] = ticket.Area.Level2
		area["level3"] = ticket.Area.Level3
		area["level4"] = ticket.Area.Level4
		area["level5"] = ticket.Area.Level5
		area["path"] = ticket.Area.Path
	}

	return map[string]interface{}{
		"ticketId":    ticket.TicketID,
		"taskId":      ticket.TaskID,
		"taskName":    ticket.TaskName,
		"date":        ticket.Date,
		"status":      ticket.Status,
		"company":     ticket.Company,
		"trade":       ticket.Trade,
		"tradeColor":  color,
		"description": ticket.Description,
		"area":        area,
	}
}

// Tokens 模板可用占位符清单，给布局编辑器的字段面板用
func Tokens() []model.TemplateToken {
	return []model.TemplateToken{
		{Key: "ticketId", Label: "Ticket-ID"},
		{Key: "taskId", Label: "Prozess-ID"},
		{Key: "taskName", Label: "Aufgabe"},
		{Key: "date", Label: "Datum"},
		{Key: "status", Label: "Status"},
		{Key: "company", Label: "Firma"},
		{Key: "trade", Label: "Gewerk"},
		{Key: "tradeColor", Label: "Gewerkfarbe"},
		{Key: "description", Label: "Beschreibung"},
		{Key: "area.level1", Label: "Bereich Ebene 1"},
		{Key: "area.level2", Label: "Bereich Ebene 2"},
		{Key: "area.level3", Label: "Bereich Ebene 3"},
		{Key: "area.level4", Label: "Bereich Ebene 4"},
		{Key: "area.level5", Label: "Bereich Ebene 5"},
		{Key: "area.path", Label: "Bereichspfad"},
	}
}
