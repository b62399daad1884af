package product

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/tokoapi/storefront/constant"
	"github.com/tokoapi/storefront/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	List(ctx context.Context, page, perPage int, statuses []constant.ProductStatus) ([]model.ProductEntity, int64, error)
	GetByID(ctx context.Context, id uint64) (*model.ProductEntity, error)
	Create(ctx context.Context, p *model.ProductEntity) (uint64, error)
	Update(ctx context.Context, p *model.ProductEntity) error
	UpdateStatus(ctx context.Context, id uint64, status constant.ProductStatus) error
	GetStockForUpdateTx(ctx context.Context, tx *sqlx.Tx, productID uint64) (*model.ProductStock, error)
	DecrementStockTx(ctx context.Context, tx *sqlx.Tx, productID uint64, quantity int) (int64, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, productID uint64, status constant.ProductStatus) error
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

func (r *SQL) List(ctx context.Context, page, perPage int, statuses []constant.ProductStatus) ([]model.ProductEntity, int64, error) {
	offset := (page - 1) * perPage

	query := "SELECT * FROM product"
	countQuery := "SELECT COUNT(*) FROM product"
	args := []interface{}{}
	if len(statuses) > 0 {
		in := " WHERE status IN (?" + repeat(",?", len(statuses)-1) + ")"
		query += in
		countQuery += in
		for _, s := range statuses {
			args = append(args, s)
		}
	}

	items := make([]model.ProductEntity, 0)
	listArgs := append(append([]interface{}{}, args...), perPage, offset)
	if err := r.conn.SelectContext(ctx, &items, query+" ORDER BY id LIMIT ? OFFSET ?", listArgs...); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.conn.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.ProductEntity, error) {
	var p model.ProductEntity
	err := r.conn.GetContext(ctx, &p, "SELECT * FROM product WHERE id = ?", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *SQL) Create(ctx context.Context, p *model.ProductEntity) (uint64, error) {
	res, err := r.conn.ExecContext(ctx,
		"INSERT INTO product (name, description, price, stock, status, sizes, discount_percent, discount_start, discount_end) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		p.Name, p.Description, p.Price, p.Stock, p.Status, p.Sizes, p.DiscountPercent, p.DiscountStart, p.DiscountEnd)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) Update(ctx context.Context, p *model.ProductEntity) error {
	_, err := r.conn.ExecContext(ctx,
		"UPDATE product SET name = ?, description = ?, price = ?, stock = ?, status = ?, sizes = ?, discount_percent = ?, discount_start = ?, discount_end = ? WHERE id = ?",
		p.Name, p.Description, p.Price, p.Stock, p.Status, p.Sizes, p.DiscountPercent, p.DiscountStart, p.DiscountEnd, p.ID)
	return err
}

func (r *SQL) UpdateStatus(ctx context.Context, id uint64, status constant.ProductStatus) error {
	_, err := r.conn.ExecContext(ctx, "UPDATE product SET status = ? WHERE id = ?", status, id)
	return err
}

// GetStockForUpdateTx locks the product row so concurrent confirmations of
// orders sharing the product serialize on it.
func (r *SQL) GetStockForUpdateTx(ctx context.Context, tx *sqlx.Tx, productID uint64) (*model.ProductStock, error) {
	var ps model.ProductStock
	row := tx.QueryRowxContext(ctx, "SELECT id, stock FROM product WHERE id = ? FOR UPDATE", productID)
	if err := row.StructScan(&ps); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &ps, nil
}

// DecrementStockTx subtracts quantity and returns the resulting stock. The
// stock >= quantity guard in the WHERE clause keeps stock non-negative even if
// a caller skips the locked read.
func (r *SQL) DecrementStockTx(ctx context.Context, tx *sqlx.Tx, productID uint64, quantity int) (int64, error) {
	res, err := tx.ExecContext(ctx, "UPDATE product SET stock = stock - ? WHERE id = ? AND stock >= ?", quantity, productID, quantity)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, sql.ErrNoRows
	}

	var stock int64
	if err := tx.GetContext(ctx, &stock, "SELECT stock FROM product WHERE id = ?", productID); err != nil {
		return 0, err
	}
	return stock, nil
}

func (r *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, productID uint64, status constant.ProductStatus) error {
	_, err := tx.ExecContext(ctx, "UPDATE product SET status = ? WHERE id = ?", status, productID)
	return err
}

func repeat(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}
