package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/domain"
)

// ClassificationRepository stores the audit trail of served predictions.
type ClassificationRepository interface {
	Create(ctx context.Context, record *domain.ClassificationRecord) error
	ListRecent(ctx context.Context, limit int) ([]domain.ClassificationRecord, error)
}

type classificationRepository struct {
	pool *pgxpool.Pool
}

// NewClassificationRepository builds repository.
func NewClassificationRepository(pool *pgxpool.Pool) ClassificationRepository {
	return &classificationRepository{pool: pool}
}

func (r *classificationRepository) Create(ctx context.Context, record *domain.ClassificationRecord) error {
	const query = `
        INSERT INTO classifications (id, request_id, client_id, ticket_text, category, urgency, priority, department)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING created_at`
	return r.pool.QueryRow(ctx, query,
		record.ID,
		record.RequestID,
		record.ClientID,
		record.TicketText,
		record.Category,
		record.Urgency,
		record.Priority,
		record.Department,
	).Scan(&record.CreatedAt)
}

func (r *classificationRepository) ListRecent(ctx context.Context, limit int) ([]domain.ClassificationRecord, error) {
	const query = `
        SELECT id, request_id, client_id, ticket_text, category, urgency, priority, department, created_at
        FROM classifications ORDER BY created_at DESC LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ClassificationRecord
	for rows.Next() {
		var record domain.ClassificationRecord
		if err := rows.Scan(
			&record.ID,
			&record.RequestID,
			&record.ClientID,
			&record.TicketText,
			&record.Category,
			&record.Urgency,
			&record.Priority,
			&record.Department,
			&record.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	return result, rows.Err()
}
