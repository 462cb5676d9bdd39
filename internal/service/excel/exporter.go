package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/baucraft/ticket-studio/internal/model"
)

const ticketSheetName = "Tickets"

// ticketColumns 导出工作簿的列顺序
var ticketColumns = []string{
	"Ticket ID", "Prozess ID", "Aufgabe", "Datum", "Status",
	"Firma", "Gewerk", "Gewerkfarbe", "Beschreibung", "Bereich",
}

// ExportTickets 把工单批次写成新工作簿，一张工单一行
func ExportTickets(tickets []model.TicketData) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", ticketSheetName); err != nil {
		return nil, fmt.Errorf("重命名工作表失败: %w", err)
	}

	for i, h := range ticketColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(ticketSheetName, cell, h); err != nil {
			return nil, fmt.Errorf("写表头失败: %w", err)
		}
	}

	for rowIdx, tk := range tickets {
		values := []string{
			tk.TicketID, tk.TaskID, tk.TaskName, tk.Date, tk.Status,
			tk.Company, tk.Trade, tk.TradeColor, tk.Description, areaLabel(tk.Area),
		}
		for colIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(ticketSheetName, cell, v); err != nil {
				return nil, fmt.Errorf("写第 %d 行失败: %w", rowIdx+2, err)
			}
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

// areaLabel 区域展示文本：优先用完整路径，否则拼接非空层级
func areaLabel(area *model.TicketArea) string {
	if area == nil {
		return ""
	}
	if area.Path != "" {
		return area.Path
	}

	var parts []string
	for _, l := range []string{area.Level1, area.Level2, area.Level3, area.Level4, area.Level5} {
		if l != "" {
			parts = append(parts, l)
		}
	}
	return strings.Join(parts, " / ")
}
