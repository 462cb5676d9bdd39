package importer

import (
	"testing"
	"time"

	"github.com/baucraft/ticket-studio/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaySeries_AllDays(t *testing.T) {
	t.Parallel()

	// 2026-07-10 (Fr) 到 2026-07-14 (Di)：闭区间 5 天
	dates := DaySeries(day(2026, time.July, 10), day(2026, time.July, 14), model.DayModeAllDays)
	if len(dates) != 5 {
		t.Fatalf("want 5 days got %d", len(dates))
	}
	if !dates[0].Equal(day(2026, time.July, 10)) || !dates[4].Equal(day(2026, time.July, 14)) {
		t.Fatalf("unexpected bounds: %v .. %v", dates[0], dates[4])
	}
}

func TestDaySeries_Weekdays(t *testing.T) {
	t.Parallel()

	// 同一区间按工作日剔除 07-11 (Sa) 和 07-12 (So)
	dates := DaySeries(day(2026, time.July, 10), day(2026, time.July, 14), model.DayModeWeekdays)
	if len(dates) != 3 {
		t.Fatalf("want 3 weekdays got %d", len(dates))
	}
	for _, d := range dates {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			t.Fatalf("weekend date leaked: %v", d)
		}
	}
}

func TestDaySeries_StartAfterEnd(t *testing.T) {
	t.Parallel()

	dates := DaySeries(day(2026, time.July, 14), day(2026, time.July, 10), model.DayModeAllDays)
	if len(dates) != 0 {
		t.Fatalf("inverted range should be empty, got %d", len(dates))
	}
}

func TestDaySeries_SingleWeekendDay(t *testing.T) {
	t.Parallel()

	// 单个周六：all-days 一天，weekdays 零天
	sat := day(2026, time.July, 11)
	if n := len(DaySeries(sat, sat, model.DayModeAllDays)); n != 1 {
		t.Fatalf("all-days single day: want 1 got %d", n)
	}
	if n := len(DaySeries(sat, sat, model.DayModeWeekdays)); n != 0 {
		t.Fatalf("weekdays single weekend day: want 0 got %d", n)
	}
}

func TestResolveDayMode_NoDurationDefaultsToWeekdays(t *testing.T) {
	t.Parallel()

	mode := ResolveDayMode(day(2026, time.July, 10), day(2026, time.July, 14), 0, false, model.DayModeAuto)
	if mode != model.DayModeWeekdays {
		t.Fatalf("want weekdays got %s", mode)
	}
}

func TestResolveDayMode_DurationPicksCloserCount(t *testing.T) {
	t.Parallel()

	start, end := day(2026, time.July, 10), day(2026, time.July, 14) // all=5, weekdays=3

	if mode := ResolveDayMode(start, end, 5, true, model.DayModeAuto); mode != model.DayModeAllDays {
		t.Fatalf("duration 5: want all-days got %s", mode)
	}
	if mode := ResolveDayMode(start, end, 3, true, model.DayModeAuto); mode != model.DayModeWeekdays {
		t.Fatalf("duration 3: want weekdays got %s", mode)
	}
}

func TestResolveDayMode_TieFavorsWeekdays(t *testing.T) {
	t.Parallel()

	// 2026-07-13 (Mo) 到 2026-07-17 (Fr)：两种模式都是 5 天，平手取工作日
	start, end := day(2026, time.July, 13), day(2026, time.July, 17)
	mode := ResolveDayMode(start, end, 5, true, model.DayModeAuto)
	if mode != model.DayModeWeekdays {
		t.Fatalf("tie: want weekdays got %s", mode)
	}

	// 决断是确定的：重复调用结果一致
	for i := 0; i < 10; i++ {
		if again := ResolveDayMode(start, end, 5, true, model.DayModeAuto); again != mode {
			t.Fatalf("resolve not deterministic: %s vs %s", mode, again)
		}
	}
}

func TestResolveDayMode_ExplicitModeWins(t *testing.T) {
	t.Parallel()

	start, end := day(2026, time.July, 10), day(2026, time.July, 14)
	if mode := ResolveDayMode(start, end, 3, true, model.DayModeAllDays); mode != model.DayModeAllDays {
		t.Fatalf("explicit all-days overridden: %s", mode)
	}
	if mode := ResolveDayMode(start, end, 5, true, model.DayModeWeekdays); mode != model.DayModeWeekdays {
		t.Fatalf("explicit weekdays overridden: %s", mode)
	}
}
