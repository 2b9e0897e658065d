package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/minsu-oh/hallabong/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Entry is one archived package row. Package is populated by Get; List
// returns the denormalized columns only.
type Entry struct {
	ID        int64                  `json:"id"`
	Topic     string                 `json:"topic"`
	Platform  models.Platform        `json:"platform"`
	Title     string                 `json:"title"`
	CreatedAt time.Time              `json:"createdAt"`
	Package   *models.ContentPackage `json:"package,omitempty"`
}

// Save stores a package and returns its archive id.
func (s *Store) Save(ctx context.Context, pkg *models.ContentPackage) (int64, error) {
	payload, err := json.Marshal(pkg)
	if err != nil {
		return 0, fmt.Errorf("encoding package: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO archived_packages (topic, platform, title, payload) VALUES (?, ?, ?, ?)`,
		pkg.Config.Topic, string(pkg.Config.Platform), pkg.BlogPost.Title, string(payload),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting archived package: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted id: %w", err)
	}
	return id, nil
}

// List returns archive entries newest first, without decoded payloads.
// A limit of 0 returns all entries.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	query := `SELECT id, topic, platform, title, created_at
		FROM archived_packages ORDER BY created_at DESC, id DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying archived packages: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e         Entry
			createdAt string
		)
		if err := rows.Scan(&e.ID, &e.Topic, &e.Platform, &e.Title, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning archived package row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating archived package rows: %w", err)
	}

	return entries, nil
}

// Get loads one archived package with its full payload decoded.
func (s *Store) Get(ctx context.Context, id int64) (*Entry, error) {
	var (
		e         Entry
		createdAt string
		payload   string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, topic, platform, title, created_at, payload
		 FROM archived_packages WHERE id = ?`, id,
	).Scan(&e.ID, &e.Topic, &e.Platform, &e.Title, &createdAt, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying archived package %d: %w", id, err)
	}

	e.CreatedAt = parseTime(createdAt)
	var pkg models.ContentPackage
	if err := json.Unmarshal([]byte(payload), &pkg); err != nil {
		return nil, fmt.Errorf("decoding archived package %d: %w", id, err)
	}
	e.Package = &pkg
	return &e, nil
}

// Delete removes an archived package by id.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM archived_packages WHERE id = ?`, id,
	)
	if err != nil {
		return fmt.Errorf("deleting archived package %d: %w", id, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
