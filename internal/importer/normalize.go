package importer

import (
	"fmt"
	"strings"

	"github.com/baucraft/ticket-studio/internal/model"
)

// NormalizeHeader 规范化表头：去首尾空白，内部连续空白压缩为单个空格
func NormalizeHeader(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// cellHeaderText 单元格作为表头/空白判定时的规范化文本
func cellHeaderText(v model.CellValue) string {
	return NormalizeHeader(cellString(v))
}

// Normalize 把原始单元格网格规范化为导入表格。
//
// 表头行取第一个含非空单元格的行；整个网格为空时退回第 0 行，保证不失败。
// 空表头按列号合成占位名（__col1 起），表头行之后的全空白行被丢弃。
// 纯函数，不修改输入。
func Normalize(fileName string, grid [][]model.CellValue) model.ImportTable {
	headerIndex := -1
	for i, row := range grid {
		for _, c := range row {
			if cellHeaderText(c) != "" {
				headerIndex = i
				break
			}
		}
		if headerIndex >= 0 {
			break
		}
	}
	if headerIndex < 0 {
		headerIndex = 0
	}

	var headerRow []model.CellValue
	if headerIndex < len(grid) {
		headerRow = grid[headerIndex]
	}

	headers := make([]string, len(headerRow))
	for i, c := range headerRow {
		name := cellHeaderText(c)
		if name == "" {
			name = fmt.Sprintf("__col%d", i+1)
		}
		headers[i] = name
	}

	var rows []model.Row
	for _, raw := range grid[min(headerIndex+1, len(grid)):] {
		blank := true
		for _, c := range raw {
			if cellHeaderText(c) != "" {
				blank = false
				break
			}
		}
		if blank {
			continue
		}

		row := make(model.Row, len(headers))
		for i, h := range headers {
			if i < len(raw) {
				row[h] = raw[i]
			} else {
				row[h] = model.EmptyCell()
			}
		}
		rows = append(rows, row)
	}

	return model.ImportTable{
		FileName:   fileName,
		Headers:    headers,
		Rows:       rows,
		SourceKind: DetectSourceKind(headers),
	}
}
