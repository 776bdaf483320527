package postgres

import (
	"context"
	"fmt"

	"pondpatrol-web/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type inquiryRepo struct {
	db *pgxpool.Pool
}

func NewInquiryRepository(db *pgxpool.Pool) domain.InquiryRepository {
	return &inquiryRepo{db: db}
}

func (r *inquiryRepo) Create(ctx context.Context, inq *domain.Inquiry) error {
	query := `INSERT INTO pond_inquiries (id, name, email, phone, farm_size, message, source, remote_ip, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		inq.ID, inq.Name, inq.Email, inq.Phone, string(inq.FarmSize),
		inq.Message, inq.Source, inq.RemoteIP, inq.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inquiry: %w", err)
	}
	return nil
}

func (r *inquiryRepo) List(ctx context.Context, limit int) ([]domain.Inquiry, error) {
	query := `SELECT id, name, email, phone, farm_size, message, source, remote_ip, created_at
              FROM pond_inquiries ORDER BY created_at DESC LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Inquiry, error) {
		var inq domain.Inquiry
		var farmSize string
		err := row.Scan(
			&inq.ID, &inq.Name, &inq.Email, &inq.Phone, &farmSize,
			&inq.Message, &inq.Source, &inq.RemoteIP, &inq.CreatedAt,
		)
		inq.FarmSize = domain.FarmSize(farmSize)
		return inq, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan inquiries: %w", err)
	}
	return items, nil
}
