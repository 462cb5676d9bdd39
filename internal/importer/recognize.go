package importer

import (
	"strings"

	"github.com/baucraft/ticket-studio/internal/model"
)

// DetectSourceKind 根据表头名集合识别表格的 schema 变体。
// 只做大小写不敏感的精确匹配，不做模糊匹配。
//
// 判定顺序固定：先逐日表，后区间表。同时满足两种特征的表
// （既有 Datum 又有 Startdatum/Enddatum）按逐日表处理。
func DetectSourceKind(headers []string) model.ImportSourceKind {
	set := make(map[string]bool, len(headers))
	for _, h := range headers {
		set[strings.ToLower(h)] = true
	}

	if set["datum"] && (set["aufgabe"] || set["prozess id"]) {
		return model.SourceKindDayList
	}
	if set["startdatum"] && set["enddatum"] {
		return model.SourceKindDateRange
	}
	return model.SourceKindUnknown
}
