package postgres

import (
	"context"
	"fmt"

	"pondpatrol-web/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type subscriberRepo struct {
	db *pgxpool.Pool
}

func NewSubscriberRepository(db *pgxpool.Pool) domain.SubscriberRepository {
	return &subscriberRepo{db: db}
}

// Upsert keeps the first subscription date for a repeated address
func (r *subscriberRepo) Upsert(ctx context.Context, sub *domain.Subscriber) error {
	query := `INSERT INTO newsletter_subscribers (email, created_at) VALUES ($1, $2)
              ON CONFLICT (email) DO NOTHING`
	if _, err := r.db.Exec(ctx, query, sub.Email, sub.CreatedAt); err != nil {
		return fmt.Errorf("upsert subscriber: %w", err)
	}
	return nil
}
