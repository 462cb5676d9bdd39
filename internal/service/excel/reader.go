package excel

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/baucraft/ticket-studio/internal/importer"
	"github.com/baucraft/ticket-studio/internal/model"
)

// ReadGrid 从 reader 打开工作簿，把第一个工作表读成原始单元格网格。
//
// 按原始值读取，不做日期预判：数字形式的单元格一律作为数字交给下游，
// 序列日期由物化阶段按约定解释。
func ReadGrid(r io.Reader) ([][]model.CellValue, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("打开工作簿失败: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("工作簿中没有工作表")
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("读取工作表失败: %w", err)
	}

	grid := make([][]model.CellValue, 0, len(rows))
	for _, row := range rows {
		cells := make([]model.CellValue, len(row))
		for i, raw := range row {
			cells[i] = classifyCell(raw)
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

// ReadTable 读取工作簿并直接规范化为导入表格
func ReadTable(fileName string, r io.Reader) (model.ImportTable, error) {
	grid, err := ReadGrid(r)
	if err != nil {
		return model.ImportTable{}, err
	}
	return importer.Normalize(fileName, grid), nil
}

// classifyCell 原始值只分空白/数字/字符串三类
func classifyCell(raw string) model.CellValue {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return model.EmptyCell()
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return model.NumberCell(n)
	}
	return model.StringCell(raw)
}
