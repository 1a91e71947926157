// Package repository holds the sql-backed data access types.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when no snapshot row exists for a key.
var ErrNotFound = errors.New("snapshot not found")

// SnapshotRow is one persisted schedule snapshot. Rows are namespaced by
// (template, profile) so unrelated templates can never clobber each other.
type SnapshotRow struct {
	TemplateID string
	ProfileID  string
	Data       []byte
	UpdatedAt  time.Time
}

// SnapshotRepo handles the snapshots table.
type SnapshotRepo struct {
	db *sql.DB
}

func NewSnapshotRepo(db *sql.DB) *SnapshotRepo {
	return &SnapshotRepo{db: db}
}

// Get loads the raw snapshot payload for one template instance.
func (r *SnapshotRepo) Get(ctx context.Context, templateID, profileID string) ([]byte, error) {
	var data []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM snapshots WHERE template_id = ? AND profile_id = ?`,
		templateID, profileID,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get snapshot %s/%s: %w", templateID, profileID, err)
	}
	return data, nil
}

// Put upserts the snapshot payload for one template instance.
func (r *SnapshotRepo) Put(ctx context.Context, templateID, profileID string, data []byte, now time.Time) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO snapshots(template_id, profile_id, data, updated_at)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(template_id, profile_id) DO UPDATE SET
	 data=excluded.data,
	 updated_at=excluded.updated_at;
	`, templateID, profileID, data, now.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("put snapshot %s/%s: %w", templateID, profileID, err)
	}
	return nil
}

// Delete removes the snapshot row for one template instance, if any.
func (r *SnapshotRepo) Delete(ctx context.Context, templateID, profileID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM snapshots WHERE template_id = ? AND profile_id = ?`,
		templateID, profileID,
	)
	if err != nil {
		return fmt.Errorf("delete snapshot %s/%s: %w", templateID, profileID, err)
	}
	return nil
}

// List returns every stored snapshot key, newest first. Used by admin
// surfaces to show which template instances have saved state.
func (r *SnapshotRepo) List(ctx context.Context) ([]SnapshotRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT template_id, profile_id, data, updated_at FROM snapshots ORDER BY updated_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []SnapshotRow
	for rows.Next() {
		var s SnapshotRow
		var ts string
		if err := rows.Scan(&s.TemplateID, &s.ProfileID, &s.Data, &ts); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			s.UpdatedAt = t
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
