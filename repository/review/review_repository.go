package review

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/tokoapi/storefront/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ReviewRepository interface {
	Upsert(ctx context.Context, rv *model.ReviewEntity) error
	ListByOrder(ctx context.Context, orderID uint64) ([]model.ReviewEntity, error)
}

func NewReviewRepository(conn *sqlx.DB) ReviewRepository {
	return &SQL{conn: conn}
}

// Upsert writes the review; the unique key on (order_id, user_id) makes a
// second submission overwrite rating and comment instead of duplicating.
func (r *SQL) Upsert(ctx context.Context, rv *model.ReviewEntity) error {
	_, err := r.conn.ExecContext(ctx,
		"INSERT INTO review (order_id, user_id, rating, comment) VALUES (?, ?, ?, ?) ON DUPLICATE KEY UPDATE rating = VALUES(rating), comment = VALUES(comment)",
		rv.OrderID, rv.UserID, rv.Rating, rv.Comment)
	return err
}

func (r *SQL) ListByOrder(ctx context.Context, orderID uint64) ([]model.ReviewEntity, error) {
	reviews := make([]model.ReviewEntity, 0)
	err := r.conn.SelectContext(ctx, &reviews, "SELECT * FROM review WHERE order_id = ? ORDER BY id", orderID)
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
