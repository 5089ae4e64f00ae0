package webstorage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/mantis/internal/dbx"
)

const (
	LocalArea         = "local"
	sessionAreaPrefix = "session:"
)

// SessionArea returns the storage area name of a terminal session.
func SessionArea(sessionID string) string {
	return sessionAreaPrefix + sessionID
}

type SQLiteStorage struct {
	db   dbx.DBTX
	area string
	now  func() time.Time
}

func NewSQLiteStorage(db dbx.DBTX, area string) *SQLiteStorage {
	return &SQLiteStorage{db: db, area: area, now: time.Now}
}

// NewLocalStorage opens the durable area.
func NewLocalStorage(db dbx.DBTX) *SQLiteStorage {
	return NewSQLiteStorage(db, LocalArea)
}

// NewSessionStorage opens the area of sessionID and purges areas of other
// sessions whose newest entry is older than maxAge. A non-positive maxAge
// disables purging.
func NewSessionStorage(ctx context.Context, db dbx.DBTX, sessionID string, maxAge time.Duration) (*SQLiteStorage, error) {
	s := NewSQLiteStorage(db, SessionArea(sessionID))
	if maxAge > 0 {
		if err := s.purgeStaleSessions(ctx, maxAge); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (r *SQLiteStorage) Area() string {
	return r.area
}

func (r *SQLiteStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM web_storage WHERE area = ? AND key = ?`, r.area, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get %s[%s]: %w", r.area, key, err)
	}
	return value, true, nil
}

func (r *SQLiteStorage) SetItem(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO web_storage (area, key, value, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(area, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, r.area, key, value, r.now().Unix())
	if err != nil {
		return fmt.Errorf("failed to set %s[%s]: %w", r.area, key, err)
	}
	return nil
}

func (r *SQLiteStorage) RemoveItem(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM web_storage WHERE area = ? AND key = ?`, r.area, key)
	if err != nil {
		return fmt.Errorf("failed to remove %s[%s]: %w", r.area, key, err)
	}
	return nil
}

func (r *SQLiteStorage) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM web_storage WHERE area = ?`, r.area)
	if err != nil {
		return fmt.Errorf("failed to clear %s: %w", r.area, err)
	}
	return nil
}

func (r *SQLiteStorage) Keys(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key FROM web_storage WHERE area = ? ORDER BY key`, r.area)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.area, err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", r.area, err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s rows: %w", r.area, err)
	}
	return keys, nil
}

func (r *SQLiteStorage) purgeStaleSessions(ctx context.Context, maxAge time.Duration) error {
	cutoff := r.now().Add(-maxAge).Unix()
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM web_storage
		WHERE area LIKE ? AND area <> ? AND area IN (
			SELECT area FROM web_storage GROUP BY area HAVING MAX(updated_at) < ?
		)
	`, sessionAreaPrefix+"%", r.area, cutoff)
	if err != nil {
		return fmt.Errorf("failed to purge stale sessions: %w", err)
	}
	return nil
}
