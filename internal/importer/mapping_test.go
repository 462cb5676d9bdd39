package importer

import (
	"testing"

	"github.com/baucraft/ticket-studio/internal/model"
)

func TestSuggestMapping_DayList(t *testing.T) {
	t.Parallel()

	table := model.ImportTable{
		Headers:    []string{"Id", "Prozess ID", "Aufgabe", "datum", "Status", "Gewerk", "Bereich Ebene 1"},
		SourceKind: model.SourceKindDayList,
	}

	m := SuggestMapping(table)
	if m.TicketID != "Id" {
		t.Fatalf("ticketId: want Id got %q", m.TicketID)
	}
	// 候选按优先级命中：Prozess ID 优先于 Id
	if m.TaskID != "Prozess ID" {
		t.Fatalf("taskId: want Prozess ID got %q", m.TaskID)
	}
	if m.TaskName != "Aufgabe" {
		t.Fatalf("taskName: want Aufgabe got %q", m.TaskName)
	}
	// 大小写不同也要命中，且返回表里的实际写法
	if m.Date != "datum" {
		t.Fatalf("date: want datum got %q", m.Date)
	}
	if m.AreaLevel1 != "Bereich Ebene 1" {
		t.Fatalf("areaLevel1: got %q", m.AreaLevel1)
	}
	// 表里没有的字段留空
	if m.Description != "" || m.StartDate != "" {
		t.Fatalf("unmapped fields should stay empty: %+v", m)
	}
}

func TestSuggestMapping_DateRange(t *testing.T) {
	t.Parallel()

	table := model.ImportTable{
		Headers: []string{
			"Id", "Prozessname", "Status Text", "Status", "Gewerk",
			"Gewerk Hintergrundfarbe", "Kommentare", "Bereichspfad",
			"Startdatum", "Enddatum", "Dauer",
		},
		SourceKind: model.SourceKindDateRange,
	}

	m := SuggestMapping(table)
	if m.TaskID != "Id" || m.TaskName != "Prozessname" {
		t.Fatalf("task fields: %+v", m)
	}
	// Status Text 优先于 Status
	if m.Status != "Status Text" {
		t.Fatalf("status: want Status Text got %q", m.Status)
	}
	if m.TradeColor != "Gewerk Hintergrundfarbe" {
		t.Fatalf("tradeColor: got %q", m.TradeColor)
	}
	if m.StartDate != "Startdatum" || m.EndDate != "Enddatum" || m.Duration != "Dauer" {
		t.Fatalf("range fields: %+v", m)
	}
	// 区间表不读工单号列
	if m.TicketID != "" {
		t.Fatalf("ticketId should stay empty for date-range, got %q", m.TicketID)
	}
}

func TestSuggestMapping_Unknown(t *testing.T) {
	t.Parallel()

	table := model.ImportTable{
		Headers:    []string{"Task ID", "Task", "Trade", "Date", "Status"},
		SourceKind: model.SourceKindUnknown,
	}

	m := SuggestMapping(table)
	if m.TaskID != "Task ID" || m.TaskName != "Task" || m.Trade != "Trade" || m.Date != "Date" {
		t.Fatalf("generic mapping: %+v", m)
	}
	// 通用名单不含区域/区间字段
	if m.AreaLevel1 != "" || m.StartDate != "" || m.TradeColor != "" {
		t.Fatalf("generic mapping should be minimal: %+v", m)
	}
}
