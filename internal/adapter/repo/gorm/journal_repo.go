package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"isocity/internal/adapter/repo/gorm/model"
	"isocity/internal/app/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JournalRepo struct {
	db *gorm.DB
}

func NewJournalRepo(db *gorm.DB) JournalRepo {
	return JournalRepo{db: db}
}

func (r JournalRepo) Append(ctx context.Context, entries []ports.JournalEntry) error {
	if len(entries) == 0 {
		return nil
	}
	rows := make([]model.JournalEntry, 0, len(entries))
	for _, e := range entries {
		b, err := json.Marshal(e.Payload)
		if err != nil {
			return fmt.Errorf("encode journal payload %s: %w", e.ID, err)
		}
		rows = append(rows, model.JournalEntry{
			EntryID:    e.ID,
			Kind:       string(e.Kind),
			OccurredAt: e.OccurredAt,
			Payload:    b,
		})
	}
	if err := dbFor(ctx, r.db).Create(&rows).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ports.ErrConflict
		}
		return err
	}
	return nil
}

// List returns the newest matching entries first.
func (r JournalRepo) List(ctx context.Context, q ports.JournalQuery) ([]ports.JournalEntry, error) {
	rows := []model.JournalEntry{}
	query := dbFor(ctx, r.db).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "seq"}, Desc: true}},
		})
	if q.Kind != "" {
		query = query.Where("kind = ?", string(q.Kind))
	}
	if !q.Since.IsZero() {
		query = query.Where("occurred_at >= ?", q.Since)
	}
	if !q.Until.IsZero() {
		query = query.Where("occurred_at < ?", q.Until)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ports.ErrNotFound
	}

	out := make([]ports.JournalEntry, 0, len(rows))
	for _, row := range rows {
		var payload map[string]any
		if len(row.Payload) > 0 {
			_ = json.Unmarshal(row.Payload, &payload)
		}
		out = append(out, ports.JournalEntry{
			ID:         row.EntryID,
			Kind:       ports.JournalKind(row.Kind),
			OccurredAt: row.OccurredAt,
			Payload:    payload,
		})
	}
	return out, nil
}
