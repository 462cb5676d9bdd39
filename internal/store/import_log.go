package store

import (
	"fmt"

	"github.com/baucraft/ticket-studio/internal/model"
)

// CreateImportLog 记录一次导入，返回日志 ID
func (s *Store) CreateImportLog(rec model.ImportRecord) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO import_logs (batch_id, file_name, source_kind, row_count, ticket_count, day_mode)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.BatchID, rec.FileName, string(rec.SourceKind), rec.RowCount, rec.TicketCount, string(rec.DayMode))
	if err != nil {
		return 0, fmt.Errorf("failed to create import log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get import log id: %w", err)
	}
	return id, nil
}

// ListImportLogs 最近的导入日志，新的在前
func (s *Store) ListImportLogs(limit int) ([]model.ImportRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(`
		SELECT id, batch_id, file_name, source_kind, row_count, ticket_count, day_mode, imported_at
		FROM import_logs ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list import logs: %w", err)
	}
	defer rows.Close()

	var out []model.ImportRecord
	for rows.Next() {
		var rec model.ImportRecord
		var kind, mode string
		if err := rows.Scan(&rec.ID, &rec.BatchID, &rec.FileName, &kind, &rec.RowCount, &rec.TicketCount, &mode, &rec.ImportedAt); err != nil {
			return nil, fmt.Errorf("failed to scan import log: %w", err)
		}
		rec.SourceKind = model.ImportSourceKind(kind)
		rec.DayMode = model.DayMode(mode)
		out = append(out, rec)
	}
	return out, rows.Err()
}
