package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/baucraft/ticket-studio/internal/model"
)

// ErrTemplateNotFound 模板不存在
var ErrTemplateNotFound = errors.New("template not found")

// ListTemplates 列出全部模板，按名称排序
func (s *Store) ListTemplates() ([]model.TicketTemplate, error) {
	rows, err := s.db.Query(`
		SELECT id, name, width_mm, height_mm, svg, created_at, updated_at
		FROM templates ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer rows.Close()

	var out []model.TicketTemplate
	for rows.Next() {
		var t model.TicketTemplate
		if err := rows.Scan(&t.ID, &t.Name, &t.WidthMm, &t.HeightMm, &t.SVG, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// GetTemplate 按 ID 取模板
func (s *Store) GetTemplate(id string) (model.TicketTemplate, error) {
	var t model.TicketTemplate
	err := s.db.QueryRow(`
		SELECT id, name, width_mm, height_mm, svg, created_at, updated_at
		FROM templates WHERE id = ?
	`, id).Scan(&t.ID, &t.Name, &t.WidthMm, &t.HeightMm, &t.SVG, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.TicketTemplate{}, ErrTemplateNotFound
	}
	if err != nil {
		return model.TicketTemplate{}, fmt.Errorf("failed to get template: %w", err)
	}
	return t, nil
}

// SaveTemplate 新建或整体覆盖模板
func (s *Store) SaveTemplate(t model.TicketTemplate) error {
	_, err := s.db.Exec(`
		INSERT INTO templates (id, name, width_mm, height_mm, svg)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			width_mm = excluded.width_mm,
			height_mm = excluded.height_mm,
			svg = excluded.svg,
			updated_at = CURRENT_TIMESTAMP
	`, t.ID, t.Name, t.WidthMm, t.HeightMm, t.SVG)
	if err != nil {
		return fmt.Errorf("failed to save template: %w", err)
	}
	return nil
}

// DeleteTemplate 删除模板
func (s *Store) DeleteTemplate(id string) error {
	res, err := s.db.Exec(`DELETE FROM templates WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTemplateNotFound
	}
	return nil
}

// EnsureTemplate 模板不存在时写入（用于首次启动种入默认模板）
func (s *Store) EnsureTemplate(t model.TicketTemplate) error {
	_, err := s.db.Exec(`
		INSERT OR IGNORE INTO templates (id, name, width_mm, height_mm, svg)
		VALUES (?, ?, ?, ?, ?)
	`, t.ID, t.Name, t.WidthMm, t.HeightMm, t.SVG)
	if err != nil {
		return fmt.Errorf("failed to ensure template: %w", err)
	}
	return nil
}
