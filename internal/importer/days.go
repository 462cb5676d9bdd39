package importer

import (
	"math"
	"time"

	"github.com/baucraft/ticket-studio/internal/model"
)

// utcDate 截断到 UTC 自然日零点
func utcDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// isWeekend 按 UTC 星期判定周末
func isWeekend(t time.Time) bool {
	wd := t.UTC().Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DaySeries 生成 [start, end] 闭区间内的日期序列（UTC 自然日）。
// weekdays 模式剔除周六周日；start 在 end 之后时返回空序列。
// mode 必须是已决断的具体模式，auto 需先经 ResolveDayMode。
func DaySeries(start, end time.Time, mode model.DayMode) []time.Time {
	cur := utcDate(start)
	last := utcDate(end)

	var out []time.Time
	for !cur.After(last) {
		if mode == model.DayModeAllDays || !isWeekend(cur) {
			out = append(out, cur)
		}
		cur = cur.AddDate(0, 0, 1)
	}
	return out
}

// ResolveDayMode 把 auto 决断为具体模式，逐任务调用。
//
// 无工期提示时默认工作日（排期导出多按工作日计数）。有提示时
// 分别计算两种模式的天数，取与提示绝对差更小的一种；差相等时
// 取工作日，保证决断确定。
func ResolveDayMode(start, end time.Time, duration float64, hasDuration bool, preferred model.DayMode) model.DayMode {
	if preferred != model.DayModeAuto {
		return preferred
	}

	if !hasDuration {
		return model.DayModeWeekdays
	}

	allDays := len(DaySeries(start, end, model.DayModeAllDays))
	weekdays := len(DaySeries(start, end, model.DayModeWeekdays))

	diffAll := math.Abs(float64(allDays) - duration)
	diffWeek := math.Abs(float64(weekdays) - duration)
	if diffWeek < diffAll {
		return model.DayModeWeekdays
	}
	if diffAll < diffWeek {
		return model.DayModeAllDays
	}
	return model.DayModeWeekdays
}

// ExpandDays 决断模式并展开日期序列
func ExpandDays(start, end time.Time, duration float64, hasDuration bool, preferred model.DayMode) []time.Time {
	mode := ResolveDayMode(start, end, duration, hasDuration, preferred)
	return DaySeries(start, end, mode)
}
