package model

import (
	"encoding/json"
	"time"
)

// CellKind 单元格值类型
type CellKind int

const (
	CellEmpty  CellKind = iota // 空白/缺失
	CellString                 // 字符串
	CellNumber                 // 数字（日期序列数也归此类）
	CellDate                   // 原生日期
)

// CellValue 单元格原始值，封闭变体 {空, 字符串, 数字, 日期}。
// 不用 interface{} 建模，避免行数据在各层之间丢失类型信息。
type CellValue struct {
	Kind CellKind
	Str  string
	Num  float64
	Date time.Time
}

// EmptyCell 空单元格
func EmptyCell() CellValue {
	return CellValue{Kind: CellEmpty}
}

// StringCell 字符串单元格
func StringCell(s string) CellValue {
	return CellValue{Kind: CellString, Str: s}
}

// NumberCell 数字单元格
func NumberCell(n float64) CellValue {
	return CellValue{Kind: CellNumber, Num: n}
}

// DateCell 原生日期单元格
func DateCell(t time.Time) CellValue {
	return CellValue{Kind: CellDate, Date: t}
}

// IsEmpty 是否为空单元格
func (v CellValue) IsEmpty() bool {
	return v.Kind == CellEmpty
}

// MarshalJSON 按值类型序列化：空 -> null，日期 -> RFC3339
func (v CellValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case CellString:
		return json.Marshal(v.Str)
	case CellNumber:
		return json.Marshal(v.Num)
	case CellDate:
		return json.Marshal(v.Date.UTC().Format(time.RFC3339))
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON 反序列化；JSON 字符串一律还原为字符串单元格
func (v *CellValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = EmptyCell()
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = StringCell(s)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = NumberCell(n)
	return nil
}
