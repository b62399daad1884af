package order

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

type OrderRepository interface {
	InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertOrderTxItem) (uint64, error)
	InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItemEntity) error
	UpdateOrderStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, status constant.OrderStatus) error
	GetOrderDetailTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.OrderDetail, error)
	GetOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.OrderItemEntity, error)
	GetOrderByID(ctx context.Context, orderID uint64) (*model.OrderEntity, error)
	GetOrderItems(ctx context.Context, orderID uint64) ([]model.OrderItemEntity, error)
	ListOrdersByUser(ctx context.Context, userID uint64, page, perPage int) ([]model.OrderEntity, int64, error)
	ListOrders(ctx context.Context, page, perPage int) ([]model.OrderEntity, int64, error)
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

func (r *SQL) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertOrderTxItem) (uint64, error) {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO `order` (user_id, customer_name, phone, address, total_price, status, courier, shipping_service, shipping_cost, shipping_etd) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		req.UserID, req.CustomerName, req.Phone, req.Address, req.TotalPrice, req.Status, req.Courier, req.ShippingService, req.ShippingCost, req.ShippingEtd)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItemEntity) error {
	q := "INSERT INTO order_item (order_id, product_id, size, quantity, price) VALUES (?, ?, ?, ?, ?)"
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, q, orderID, it.ProductID, it.Size, it.Quantity, it.Price); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) UpdateOrderStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, status constant.OrderStatus) error {
	_, err := tx.ExecContext(ctx, "UPDATE `order` SET status = ? WHERE id = ?", status, orderID)
	return err
}

func (r *SQL) GetOrderDetailTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.OrderDetail, error) {
	var detail model.OrderDetail
	row := tx.QueryRowxContext(ctx, "SELECT id, user_id, status FROM `order` WHERE id = ? FOR UPDATE", orderID)
	if err := row.StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (r *SQL) GetOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.OrderItemEntity, error) {
	rows, err := tx.QueryxContext(ctx, "SELECT id, order_id, product_id, size, quantity, price FROM order_item WHERE order_id = ? ORDER BY id", orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.OrderItemEntity, 0)
	for rows.Next() {
		var it model.OrderItemEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func (r *SQL) GetOrderByID(ctx context.Context, orderID uint64) (*model.OrderEntity, error) {
	var o model.OrderEntity
	err := r.conn.GetContext(ctx, &o, "SELECT * FROM `order` WHERE id = ?", orderID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *SQL) GetOrderItems(ctx context.Context, orderID uint64) ([]model.OrderItemEntity, error) {
	items := make([]model.OrderItemEntity, 0)
	err := r.conn.SelectContext(ctx, &items, "SELECT id, order_id, product_id, size, quantity, price FROM order_item WHERE order_id = ? ORDER BY id", orderID)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) ListOrdersByUser(ctx context.Context, userID uint64, page, perPage int) ([]model.OrderEntity, int64, error) {
	offset := (page - 1) * perPage

	orders := make([]model.OrderEntity, 0)
	err := r.conn.SelectContext(ctx, &orders, "SELECT * FROM `order` WHERE user_id = ? ORDER BY id DESC LIMIT ? OFFSET ?", userID, perPage, offset)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM `order` WHERE user_id = ?", userID); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *SQL) ListOrders(ctx context.Context, page, perPage int) ([]model.OrderEntity, int64, error) {
	offset := (page - 1) * perPage

	orders := make([]model.OrderEntity, 0)
	err := r.conn.SelectContext(ctx, &orders, "SELECT * FROM `order` ORDER BY id DESC LIMIT ? OFFSET ?", perPage, offset)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM `order`"); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}
