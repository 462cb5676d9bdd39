package importer

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/baucraft/ticket-studio/internal/model"
)

// serialEpoch 序列日期的零点：1899-12-30。
// 表格软件沿用 1900 闰年 bug，用 12-30 而不是 12-31 抵消偏移。
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// SerialToTime 把序列日期值（自 1899-12-30 的天数，小数部分为当天时刻）
// 转为 UTC 时间。非有限值返回 false。
func SerialToTime(serial float64) (time.Time, bool) {
	if math.IsNaN(serial) || math.IsInf(serial, 0) {
		return time.Time{}, false
	}

	wholeDays := math.Floor(serial)
	fractionMs := math.Round((serial - wholeDays) * 24 * 60 * 60 * 1000)

	t := serialEpoch.AddDate(0, 0, int(wholeDays))
	return t.Add(time.Duration(fractionMs) * time.Millisecond), true
}

// cellDate 把单元格解析为日期：原生日期直接用，数字按序列日期解释
func cellDate(v model.CellValue) (time.Time, bool) {
	switch v.Kind {
	case model.CellDate:
		return v.Date.UTC(), true
	case model.CellNumber:
		return SerialToTime(v.Num)
	default:
		return time.Time{}, false
	}
}

// isoDate 单元格的 ISO 日期字符串（YYYY-MM-DD），解析失败返回空串
func isoDate(v model.CellValue) string {
	t, ok := cellDate(v)
	if !ok {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}

// cellString 单元格的去空白字符串形式，空白视为缺失（空串）
func cellString(v model.CellValue) string {
	switch v.Kind {
	case model.CellString:
		return strings.TrimSpace(v.Str)
	case model.CellNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case model.CellDate:
		return v.Date.UTC().Format("2006-01-02")
	default:
		return ""
	}
}

// durationHint 工期提示：仅接受有限数字单元格
func durationHint(v model.CellValue) (float64, bool) {
	if v.Kind != model.CellNumber {
		return 0, false
	}
	if math.IsNaN(v.Num) || math.IsInf(v.Num, 0) {
		return 0, false
	}
	return v.Num, true
}

// tradeColorRe 仅匹配 RGB(r,g,b) 的紧凑写法，分量间不允许空格
var tradeColorRe = regexp.MustCompile(`(?i)RGB\((\d{1,3}),(\d{1,3}),(\d{1,3})\)`)

// ParseTradeColor 把 "RGB(r,g,b)" 解析为小写 "#rrggbb"。
// 分量裁剪到 [0,255]；其他写法一律返回空串（字段留空，不报错）。
func ParseTradeColor(v model.CellValue) string {
	s := cellString(v)
	if s == "" {
		return ""
	}

	m := tradeColorRe.FindStringSubmatch(s)
	if m == nil {
		return ""
	}

	return fmt.Sprintf("#%02x%02x%02x", clampChannel(m[1]), clampChannel(m[2]), clampChannel(m[3]))
}

// clampChannel 颜色分量字符串转数值并裁剪到 [0,255]
func clampChannel(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}
