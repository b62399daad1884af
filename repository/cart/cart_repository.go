package cart

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/tokoapi/storefront/model"
)

type SQL struct {
	conn *sqlx.DB
}

type CartRepository interface {
	GetItems(ctx context.Context, userID uint64) ([]model.CartLine, error)
	GetItemsTx(ctx context.Context, tx *sqlx.Tx, userID uint64) ([]model.CartLine, error)
	UpsertItem(ctx context.Context, userID uint64, req *model.UpsertCartItemRequest) error
	UpdateQuantity(ctx context.Context, userID, cartItemID uint64, quantity int) error
	RemoveItem(ctx context.Context, userID, cartItemID uint64) error
	DeleteCartTx(ctx context.Context, tx *sqlx.Tx, userID uint64) error
}

func NewCartRepository(conn *sqlx.DB) CartRepository {
	return &SQL{conn: conn}
}

const cartLinesQuery = `SELECT ci.id as cart_item_id, ci.product_id, ci.size, ci.quantity,
p.name as product_name, p.status as product_status, p.price, p.discount_percent, p.discount_start, p.discount_end, p.stock
FROM cart_item ci
JOIN product p ON ci.product_id = p.id
WHERE ci.user_id = ?
ORDER BY ci.id`

func (r *SQL) GetItems(ctx context.Context, userID uint64) ([]model.CartLine, error) {
	rows, err := r.conn.QueryxContext(ctx, cartLinesQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLines(rows)
}

func (r *SQL) GetItemsTx(ctx context.Context, tx *sqlx.Tx, userID uint64) ([]model.CartLine, error) {
	rows, err := tx.QueryxContext(ctx, cartLinesQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLines(rows)
}

func scanLines(rows *sqlx.Rows) ([]model.CartLine, error) {
	lines := make([]model.CartLine, 0)
	for rows.Next() {
		var l model.CartLine
		if err := rows.StructScan(&l); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// UpsertItem adds the product/size tuple or replaces its quantity
// (last-write-wins, the cart is not versioned).
func (r *SQL) UpsertItem(ctx context.Context, userID uint64, req *model.UpsertCartItemRequest) error {
	_, err := r.conn.ExecContext(ctx,
		"INSERT INTO cart_item (user_id, product_id, size, quantity) VALUES (?, ?, ?, ?) ON DUPLICATE KEY UPDATE quantity = VALUES(quantity)",
		userID, req.ProductID, req.Size, req.Quantity)
	return err
}

func (r *SQL) UpdateQuantity(ctx context.Context, userID, cartItemID uint64, quantity int) error {
	res, err := r.conn.ExecContext(ctx, "UPDATE cart_item SET quantity = ? WHERE id = ? AND user_id = ?", quantity, cartItemID, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *SQL) RemoveItem(ctx context.Context, userID, cartItemID uint64) error {
	res, err := r.conn.ExecContext(ctx, "DELETE FROM cart_item WHERE id = ? AND user_id = ?", cartItemID, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteCartTx consumes the whole cart inside the checkout transaction.
func (r *SQL) DeleteCartTx(ctx context.Context, tx *sqlx.Tx, userID uint64) error {
	_, err := tx.ExecContext(ctx, "DELETE FROM cart_item WHERE user_id = ?", userID)
	return err
}
