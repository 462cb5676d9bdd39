package importer

import (
	"github.com/baucraft/ticket-studio/internal/model"
)

// field 按映射取行内单元格；未映射或列不存在时视为空单元格
func field(row model.Row, header string) model.CellValue {
	if header == "" {
		return model.EmptyCell()
	}
	v, ok := row[header]
	if !ok {
		return model.EmptyCell()
	}
	return v
}

// areaOf 组装区域层级；所有字段都为空时返回 nil
func areaOf(row model.Row, mapping model.ColumnMapping) *model.TicketArea {
	area := model.TicketArea{
		Level1: cellString(field(row, mapping.AreaLevel1)),
		Level2: cellString(field(row, mapping.AreaLevel2)),
		Level3: cellString(field(row, mapping.AreaLevel3)),
		Level4: cellString(field(row, mapping.AreaLevel4)),
		Level5: cellString(field(row, mapping.AreaLevel5)),
		Path:   cellString(field(row, mapping.AreaPath)),
	}
	if area == (model.TicketArea{}) {
		return nil
	}
	return &area
}

// Materialize 把表格 + 映射 + 展开模式物化为工单批次。
//
// 输出顺序跟随源行顺序，区间展开的工单在行内按日期升序。缺任务号或
// 任务名的行、起止日期解析失败的行直接跳过，单字段解析失败只留空该
// 字段，批次永不整体失败。纯函数，每次调用整批重建。
func Materialize(table model.ImportTable, mapping model.ColumnMapping, dayMode model.DayMode) []model.TicketData {
	switch table.SourceKind {
	case model.SourceKindDayList:
		return materializeDayList(table, mapping)
	case model.SourceKindDateRange:
		return materializeDateRange(table, mapping, dayMode)
	}
	return materializeGeneric(table, mapping)
}

// materializeDayList 逐日表：一行一张工单。
// 工单号优先取映射列，缺失时用 任务号:日期 合成。
func materializeDayList(table model.ImportTable, mapping model.ColumnMapping) []model.TicketData {
	out := make([]model.TicketData, 0, len(table.Rows))

	for _, row := range table.Rows {
		taskID := cellString(field(row, mapping.TaskID))
		taskName := cellString(field(row, mapping.TaskName))
		if taskID == "" || taskName == "" {
			continue
		}

		date := isoDate(field(row, mapping.Date))
		ticketID := cellString(field(row, mapping.TicketID))
		if ticketID == "" {
			ticketID = taskID + ":" + date
		}

		out = append(out, model.TicketData{
			TicketID:    ticketID,
			TaskID:      taskID,
			TaskName:    taskName,
			Date:        date,
			Status:      cellString(field(row, mapping.Status)),
			Company:     cellString(field(row, mapping.Company)),
			Trade:       cellString(field(row, mapping.Trade)),
			TradeColor:  ParseTradeColor(field(row, mapping.TradeColor)),
			Description: cellString(field(row, mapping.Description)),
			Area:        areaOf(row, mapping),
			Raw:         row,
		})
	}
	return out
}

// materializeDateRange 区间表：一行展开为零到多张逐日工单。
// 展开模式逐行决断，同一文件内不同任务在 auto 下可以落到不同模式。
// 工单号一律合成为 任务号:日期，不读工单号列。
func materializeDateRange(table model.ImportTable, mapping model.ColumnMapping, dayMode model.DayMode) []model.TicketData {
	out := make([]model.TicketData, 0, len(table.Rows))

	for _, row := range table.Rows {
		taskID := cellString(field(row, mapping.TaskID))
		taskName := cellString(field(row, mapping.TaskName))
		if taskID == "" || taskName == "" {
			continue
		}

		start, okStart := cellDate(field(row, mapping.StartDate))
		end, okEnd := cellDate(field(row, mapping.EndDate))
		if !okStart || !okEnd {
			continue
		}

		duration, hasDuration := durationHint(field(row, mapping.Duration))
		dates := ExpandDays(start, end, duration, hasDuration, dayMode)

		status := cellString(field(row, mapping.Status))
		company := cellString(field(row, mapping.Company))
		trade := cellString(field(row, mapping.Trade))
		tradeColor := ParseTradeColor(field(row, mapping.TradeColor))
		description := cellString(field(row, mapping.Description))
		area := areaOf(row, mapping)

		for _, d := range dates {
			iso := d.Format("2006-01-02")
			out = append(out, model.TicketData{
				TicketID:    taskID + ":" + iso,
				TaskID:      taskID,
				TaskName:    taskName,
				Date:        iso,
				Status:      status,
				Company:     company,
				Trade:       trade,
				TradeColor:  tradeColor,
				Description: description,
				Area:        area,
				Raw:         row,
			})
		}
	}
	return out
}

// materializeGeneric 未识别表的兜底：一行一张工单，尽力取字段
func materializeGeneric(table model.ImportTable, mapping model.ColumnMapping) []model.TicketData {
	out := make([]model.TicketData, 0, len(table.Rows))

	for _, row := range table.Rows {
		taskID := cellString(field(row, mapping.TaskID))
		taskName := cellString(field(row, mapping.TaskName))
		if taskID == "" || taskName == "" {
			continue
		}

		date := isoDate(field(row, mapping.Date))
		ticketID := cellString(field(row, mapping.TicketID))
		if ticketID == "" {
			ticketID = taskID + ":" + date
		}

		out = append(out, model.TicketData{
			TicketID:    ticketID,
			TaskID:      taskID,
			TaskName:    taskName,
			Date:        date,
			Status:      cellString(field(row, mapping.Status)),
			Company:     cellString(field(row, mapping.Company)),
			Trade:       cellString(field(row, mapping.Trade)),
			Description: cellString(field(row, mapping.Description)),
			Raw:         row,
		})
	}
	return out
}
