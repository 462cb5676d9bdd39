package importer

import (
	"testing"
	"time"

	"github.com/baucraft/ticket-studio/internal/model"
)

func TestSerialToTime_KnownDate(t *testing.T) {
	t.Parallel()

	// 46216 = 2026-07-13（自 1899-12-30 的天数）
	got, ok := SerialToTime(46216)
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Format("2006-01-02") != "2026-07-13" {
		t.Fatalf("serial 46216: want 2026-07-13 got %s", got.Format("2006-01-02"))
	}
}

func TestSerialToTime_FractionIsTimeOfDay(t *testing.T) {
	t.Parallel()

	// 0.5 = 当天正午
	got, ok := SerialToTime(46216.5)
	if !ok {
		t.Fatalf("expected ok")
	}
	want := time.Date(2026, time.July, 13, 12, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("want %v got %v", want, got)
	}
}

func TestSerialToTime_NonFinite(t *testing.T) {
	t.Parallel()

	nan := 0.0
	nan = nan / nan
	if _, ok := SerialToTime(nan); ok {
		t.Fatalf("NaN should not parse")
	}
}

func TestIsoDate_NativeDateAndSerial(t *testing.T) {
	t.Parallel()

	native := model.DateCell(time.Date(2026, time.July, 13, 15, 30, 0, 0, time.UTC))
	if got := isoDate(native); got != "2026-07-13" {
		t.Fatalf("native date: got %q", got)
	}
	if got := isoDate(model.NumberCell(46216)); got != "2026-07-13" {
		t.Fatalf("serial: got %q", got)
	}
	if got := isoDate(model.StringCell("2026-07-13")); got != "" {
		t.Fatalf("string cell should not parse as date, got %q", got)
	}
	if got := isoDate(model.EmptyCell()); got != "" {
		t.Fatalf("empty cell: got %q", got)
	}
}

func TestParseTradeColor(t *testing.T) {
	t.Parallel()

	if got := ParseTradeColor(model.StringCell("RGB(11,0,176)")); got != "#0b00b0" {
		t.Fatalf("RGB(11,0,176): got %q", got)
	}
	// 超范围分量裁剪到 255
	if got := ParseTradeColor(model.StringCell("RGB(999,0,0)")); got != "#ff0000" {
		t.Fatalf("RGB(999,0,0): got %q", got)
	}
	// 大小写不敏感
	if got := ParseTradeColor(model.StringCell("rgb(0,128,255)")); got != "#0080ff" {
		t.Fatalf("rgb lowercase: got %q", got)
	}
	// 其他写法一律留空
	if got := ParseTradeColor(model.StringCell("not a color")); got != "" {
		t.Fatalf("junk: got %q", got)
	}
	if got := ParseTradeColor(model.StringCell("RGB(1, 2, 3)")); got != "" {
		t.Fatalf("spaced components should not match, got %q", got)
	}
	if got := ParseTradeColor(model.StringCell("#ff0000")); got != "" {
		t.Fatalf("hex input should not match, got %q", got)
	}
	if got := ParseTradeColor(model.EmptyCell()); got != "" {
		t.Fatalf("empty cell: got %q", got)
	}
}

func TestCellString(t *testing.T) {
	t.Parallel()

	if got := cellString(model.StringCell("  Gewerk  ")); got != "Gewerk" {
		t.Fatalf("trim failed: %q", got)
	}
	if got := cellString(model.NumberCell(42)); got != "42" {
		t.Fatalf("number: got %q", got)
	}
	if got := cellString(model.NumberCell(1.5)); got != "1.5" {
		t.Fatalf("fraction: got %q", got)
	}
	if got := cellString(model.StringCell("   ")); got != "" {
		t.Fatalf("blank string should be empty, got %q", got)
	}
}
