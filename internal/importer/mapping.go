package importer

import (
	"strings"

	"github.com/baucraft/ticket-studio/internal/model"
)

// pickHeader 按优先级在实际表头中找候选名（大小写不敏感的精确匹配），
// 第一个命中的候选生效；都未命中返回空串。
func pickHeader(headers []string, candidates ...string) string {
	lowered := make(map[string]string, len(headers))
	for _, h := range headers {
		lowered[strings.ToLower(h)] = h
	}

	for _, c := range candidates {
		if found, ok := lowered[strings.ToLower(c)]; ok {
			return found
		}
	}
	return ""
}

// SuggestMapping 按识别出的 schema 为表格生成默认列映射。
// 候选名单按 schema 固定；结果仅为建议，物化时直接用传入的映射，
// 不会在这里之外再做推导。
func SuggestMapping(table model.ImportTable) model.ColumnMapping {
	headers := table.Headers

	switch table.SourceKind {
	case model.SourceKindDayList:
		return model.ColumnMapping{
			TicketID:    pickHeader(headers, "Id"),
			TaskID:      pickHeader(headers, "Prozess ID", "ProzessId", "ProzessID", "Id"),
			TaskName:    pickHeader(headers, "Aufgabe", "Prozessname"),
			Date:        pickHeader(headers, "Datum"),
			Status:      pickHeader(headers, "Status"),
			Trade:       pickHeader(headers, "Gewerk"),
			Description: pickHeader(headers, "Beschreibung"),
			AreaLevel1:  pickHeader(headers, "Bereich Ebene 1"),
			AreaLevel2:  pickHeader(headers, "Bereich Ebene 2"),
			AreaLevel3:  pickHeader(headers, "Bereich Ebene 3"),
			AreaLevel4:  pickHeader(headers, "Bereich Ebene 4"),
			AreaLevel5:  pickHeader(headers, "Bereich Ebene 5"),
		}

	case model.SourceKindDateRange:
		return model.ColumnMapping{
			TaskID:      pickHeader(headers, "Id"),
			TaskName:    pickHeader(headers, "Prozessname"),
			Status:      pickHeader(headers, "Status Text", "Status"),
			Trade:       pickHeader(headers, "Gewerk"),
			TradeColor:  pickHeader(headers, "Gewerk Hintergrundfarbe"),
			Description: pickHeader(headers, "Kommentare"),
			AreaLevel1:  pickHeader(headers, "Bereich Ebene 1"),
			AreaLevel2:  pickHeader(headers, "Bereich Ebene 2"),
			AreaLevel3:  pickHeader(headers, "Bereich Ebene 3"),
			AreaLevel4:  pickHeader(headers, "Bereich Ebene 4"),
			AreaLevel5:  pickHeader(headers, "Bereich Ebene 5"),
			AreaPath:    pickHeader(headers, "Bereichspfad"),
			StartDate:   pickHeader(headers, "Startdatum"),
			EndDate:     pickHeader(headers, "Enddatum"),
			Duration:    pickHeader(headers, "Dauer"),
		}
	}

	// 未识别的表只建议最基础的字段
	return model.ColumnMapping{
		TaskID:      pickHeader(headers, "Id", "Task ID", "TaskId"),
		TaskName:    pickHeader(headers, "Aufgabe", "Prozessname", "Task"),
		Trade:       pickHeader(headers, "Gewerk", "Trade"),
		Date:        pickHeader(headers, "Datum", "Date"),
		Status:      pickHeader(headers, "Status"),
		Description: pickHeader(headers, "Beschreibung", "Kommentare"),
	}
}
