package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/onewindow/helpdesk-go/internal/model"
	"go.uber.org/zap"
)

var ErrTicketNotFound = errors.New("ticket not found")

const ticketsSchema = `
CREATE TABLE IF NOT EXISTS tickets (
	id              TEXT PRIMARY KEY,
	subject         TEXT NOT NULL,
	body            TEXT NOT NULL,
	language        TEXT NOT NULL,
	category        TEXT NOT NULL,
	priority        TEXT NOT NULL,
	department      TEXT NOT NULL,
	status          TEXT NOT NULL DEFAULT 'new',
	summary         TEXT NOT NULL DEFAULT '',
	suggested_reply TEXT NOT NULL DEFAULT '',
	created_at      TIMESTAMPTZ NOT NULL,
	updated_at      TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tickets_status ON tickets (status);
CREATE INDEX IF NOT EXISTS idx_tickets_category ON tickets (category);
`

// TicketStore Postgres-backed ticket persistence
type TicketStore struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewTicketStore connects to Postgres and bootstraps the schema.
func NewTicketStore(ctx context.Context, url string, logger *zap.Logger) (*TicketStore, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if _, err := pool.Exec(ctx, ticketsSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("bootstrap tickets schema: %w", err)
	}

	return &TicketStore{pool: pool, logger: logger}, nil
}

// Close releases the connection pool.
func (s *TicketStore) Close() {
	s.pool.Close()
}

// Create inserts a ticket. CreatedAt/UpdatedAt are set here.
func (s *TicketStore) Create(ctx context.Context, t *model.Ticket) error {
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	_, err := s.pool.Exec(ctx, `
		INSERT INTO tickets
			(id, subject, body, language, category, priority, department,
			 status, summary, suggested_reply, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		t.ID, t.Subject, t.Body, string(t.Language), t.Category, string(t.Priority),
		t.Department, t.Status, t.Summary, t.SuggestedReply, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert ticket: %w", err)
	}

	s.logger.Info("ticket stored",
		zap.String("ticketId", t.ID),
		zap.String("status", t.Status),
		zap.String("category", t.Category))
	return nil
}

// Get fetches one ticket by ID.
func (s *TicketStore) Get(ctx context.Context, id string) (*model.Ticket, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, subject, body, language, category, priority, department,
		       status, summary, suggested_reply, created_at, updated_at
		FROM tickets WHERE id = $1`, id)

	t, err := scanTicket(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTicketNotFound
		}
		return nil, fmt.Errorf("select ticket: %w", err)
	}
	return t, nil
}

// List returns tickets newest first, optionally filtered by status and
// category.
func (s *TicketStore) List(ctx context.Context, status, category string, limit int) ([]model.Ticket, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	query := `
		SELECT id, subject, body, language, category, priority, department,
		       status, summary, suggested_reply, created_at, updated_at
		FROM tickets
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = '' OR category = $2)
		ORDER BY created_at DESC
		LIMIT $3`

	rows, err := s.pool.Query(ctx, query, status, category, limit)
	if err != nil {
		return nil, fmt.Errorf("select tickets: %w", err)
	}
	defer rows.Close()

	var tickets []model.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		tickets = append(tickets, *t)
	}
	return tickets, rows.Err()
}

// UpdateStatus changes a ticket's status.
func (s *TicketStore) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE tickets SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update ticket status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTicketNotFound
	}

	s.logger.Info("ticket status updated",
		zap.String("ticketId", id),
		zap.String("status", status))
	return nil
}

// Metrics aggregates helpdesk counters: totals and breakdowns by
// category, status and priority.
func (s *TicketStore) Metrics(ctx context.Context) (*model.Metrics, error) {
	m := &model.Metrics{
		ByCategory: make(map[string]int),
		ByStatus:   make(map[string]int),
		ByPriority: make(map[string]int),
	}

	rows, err := s.pool.Query(ctx, `SELECT status, category, priority, COUNT(*)
		FROM tickets GROUP BY status, category, priority`)
	if err != nil {
		return nil, fmt.Errorf("aggregate metrics: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status, category, priority string
		var count int
		if err := rows.Scan(&status, &category, &priority, &count); err != nil {
			return nil, fmt.Errorf("scan metrics row: %w", err)
		}
		m.Total += count
		m.ByStatus[status] += count
		m.ByCategory[category] += count
		m.ByPriority[priority] += count
		if status == model.StatusClosedAuto {
			m.AutoResolved += count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	m.Manual = m.Total - m.AutoResolved
	return m, nil
}

// scannable is satisfied by both pgx.Row and pgx.Rows.
type scannable interface {
	Scan(dest ...any) error
}

func scanTicket(row scannable) (*model.Ticket, error) {
	var t model.Ticket
	var lang, priority string
	err := row.Scan(&t.ID, &t.Subject, &t.Body, &lang, &t.Category, &priority,
		&t.Department, &t.Status, &t.Summary, &t.SuggestedReply, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.Language = model.Language(lang)
	t.Priority = model.Priority(priority)
	return &t, nil
}
