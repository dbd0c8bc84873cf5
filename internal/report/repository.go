// Package report manages incident reports and their persistence.
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Report pairs a stored image URL with geographic coordinates.
type Report struct {
	ID          string    `json:"id"`
	ImageURL    string    `json:"imageUrl"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// ErrNotFound is returned when a report does not exist.
var ErrNotFound = errors.New("report not found")

// Store is the persistence surface the service depends on.
type Store interface {
	Create(ctx context.Context, imageURL string, lat, lng float64, description string) (*Report, error)
	List(ctx context.Context) ([]Report, error)
	GetByID(ctx context.Context, id string) (*Report, error)
	Delete(ctx context.Context, id string) error
}

// Repository handles all report database operations.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new Repository with the given connection pool.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Create inserts a new report and returns the created record with its
// server-assigned id and timestamp.
func (r *Repository) Create(ctx context.Context, imageURL string, lat, lng float64, description string) (*Report, error) {
	rep := &Report{}
	err := r.db.QueryRow(ctx,
		`INSERT INTO reports (image_url, latitude, longitude, description)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, image_url, latitude, longitude, description, created_at`,
		imageURL, lat, lng, description,
	).Scan(&rep.ID, &rep.ImageURL, &rep.Latitude, &rep.Longitude, &rep.Description, &rep.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("insert report: %w", err)
	}
	return rep, nil
}

// List returns all reports, newest first. Ties on created_at fall back to id
// so the ordering is stable.
func (r *Repository) List(ctx context.Context) ([]Report, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, image_url, latitude, longitude, description, created_at
		 FROM reports
		 ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	reports := []Report{}
	for rows.Next() {
		var rep Report
		if err := rows.Scan(&rep.ID, &rep.ImageURL, &rep.Latitude, &rep.Longitude, &rep.Description, &rep.Timestamp); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return reports, nil
}

// GetByID fetches a report by its UUID.
func (r *Repository) GetByID(ctx context.Context, id string) (*Report, error) {
	rep := &Report{}
	err := r.db.QueryRow(ctx,
		`SELECT id, image_url, latitude, longitude, description, created_at
		 FROM reports WHERE id = $1`,
		id,
	).Scan(&rep.ID, &rep.ImageURL, &rep.Latitude, &rep.Longitude, &rep.Description, &rep.Timestamp)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get report by id: %w", err)
	}
	return rep, nil
}

// Delete removes a report row. Returns ErrNotFound when no row matched.
func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
