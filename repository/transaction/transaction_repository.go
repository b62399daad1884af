package transaction

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/tokoapi/storefront/model"
)

type SQL struct {
	conn *sqlx.DB
}

type TransactionRepository interface {
	GetByOrderID(ctx context.Context, orderID uint64) (*model.TransactionEntity, error)
	GetByOrderIDTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.TransactionEntity, error)
	UpsertTx(ctx context.Context, tx *sqlx.Tx, item *model.UpsertTransactionTxItem) error
}

func NewTransactionRepository(conn *sqlx.DB) TransactionRepository {
	return &SQL{conn: conn}
}

func (r *SQL) GetByOrderID(ctx context.Context, orderID uint64) (*model.TransactionEntity, error) {
	var t model.TransactionEntity
	err := r.conn.GetContext(ctx, &t, "SELECT * FROM transaction WHERE order_id = ?", orderID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *SQL) GetByOrderIDTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.TransactionEntity, error) {
	var t model.TransactionEntity
	row := tx.QueryRowxContext(ctx, "SELECT * FROM transaction WHERE order_id = ? FOR UPDATE", orderID)
	if err := row.StructScan(&t); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// UpsertTx creates the transaction on the first notification or payment attempt
// and updates it in place afterward. The unique key on order_id makes this safe
// under concurrent webhook deliveries for the same order.
func (r *SQL) UpsertTx(ctx context.Context, tx *sqlx.Tx, item *model.UpsertTransactionTxItem) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO transaction (order_id, gateway_transaction_id, payment_type, amount, status, fraud_status, raw_response)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
gateway_transaction_id = VALUES(gateway_transaction_id),
payment_type = VALUES(payment_type),
amount = VALUES(amount),
status = VALUES(status),
fraud_status = VALUES(fraud_status),
raw_response = VALUES(raw_response)`,
		item.OrderID, item.GatewayTransactionID, item.PaymentType, item.Amount, item.Status, item.FraudStatus, []byte(item.RawResponse))
	return err
}
