package model

// ImportSourceKind 导入表格的 schema 变体
type ImportSourceKind string

const (
	// SourceKindDayList 逐日表：每行已经是单天的任务
	SourceKindDayList ImportSourceKind = "day-list"
	// SourceKindDateRange 区间表：每行带起止日期，需要展开成逐日工单
	SourceKindDateRange ImportSourceKind = "date-range"
	// SourceKindUnknown 未识别，走通用兜底映射
	SourceKindUnknown ImportSourceKind = "unknown"
)

// Row 一行数据：表头名 -> 原始单元格值
type Row map[string]CellValue

// ImportTable 规范化后的导入表格。
// 每次导入整表重建，导入后不再修改。
type ImportTable struct {
	FileName   string           `json:"fileName"`
	Headers    []string         `json:"headers"`
	Rows       []Row            `json:"rows"`
	SourceKind ImportSourceKind `json:"sourceKind"`
}

// ColumnMapping 规范字段 -> 表头名的映射，空串表示未映射。
// 由建议器自动生成，用户可整体替换。
type ColumnMapping struct {
	TicketID    string `json:"ticketId,omitempty"`
	TaskID      string `json:"taskId,omitempty"`
	TaskName    string `json:"taskName,omitempty"`
	Date        string `json:"date,omitempty"`
	Status      string `json:"status,omitempty"`
	Company     string `json:"company,omitempty"`
	Trade       string `json:"trade,omitempty"`
	TradeColor  string `json:"tradeColor,omitempty"`
	Description string `json:"description,omitempty"`
	AreaLevel1  string `json:"areaLevel1,omitempty"`
	AreaLevel2  string `json:"areaLevel2,omitempty"`
	AreaLevel3  string `json:"areaLevel3,omitempty"`
	AreaLevel4  string `json:"areaLevel4,omitempty"`
	AreaLevel5  string `json:"areaLevel5,omitempty"`
	AreaPath    string `json:"areaPath,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Duration    string `json:"duration,omitempty"`
}

// TicketArea 工单的区域层级
type TicketArea struct {
	Level1 string `json:"level1,omitempty"`
	Level2 string `json:"level2,omitempty"`
	Level3 string `json:"level3,omitempty"`
	Level4 string `json:"level4,omitempty"`
	Level5 string `json:"level5,omitempty"`
	Path   string `json:"path,omitempty"`
}

// TicketData 规范工单记录，一张工单对应一个任务的一个自然日。
// Raw 保留完整源行，供模板中非规范字段的占位符使用。
type TicketData struct {
	TicketID    string      `json:"ticketId"`
	TaskID      string      `json:"taskId"`
	TaskName    string      `json:"taskName"`
	Date        string      `json:"date,omitempty"`
	Status      string      `json:"status,omitempty"`
	Company     string      `json:"company,omitempty"`
	Trade       string      `json:"trade,omitempty"`
	TradeColor  string      `json:"tradeColor,omitempty"`
	Description string      `json:"description,omitempty"`
	Area        *TicketArea `json:"area,omitempty"`
	Raw         Row         `json:"raw,omitempty"`
}

// DayMode 区间展开模式
type DayMode string

const (
	DayModeAuto     DayMode = "auto"     // 按工期提示逐任务自动选择
	DayModeWeekdays DayMode = "weekdays" // 仅工作日
	DayModeAllDays  DayMode = "all-days" // 全部自然日
)

// Valid 是否为已知模式
func (m DayMode) Valid() bool {
	switch m {
	case DayModeAuto, DayModeWeekdays, DayModeAllDays:
		return true
	}
	return false
}

// ImportRecord 导入日志记录
type ImportRecord struct {
	ID          int64            `json:"id"`
	BatchID     string           `json:"batchId"`
	FileName    string           `json:"fileName"`
	SourceKind  ImportSourceKind `json:"sourceKind"`
	RowCount    int              `json:"rowCount"`
	TicketCount int              `json:"ticketCount"`
	DayMode     DayMode          `json:"dayMode"`
	ImportedAt  string           `json:"importedAt"`
}
