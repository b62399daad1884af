package user

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/tokoapi/storefront/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	Create(ctx context.Context, user *model.UserEntity) (*model.UserEntity, error)
	Update(ctx context.Context, user *model.UserEntity) error
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

func (r *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := "SELECT * FROM user WHERE 1=1"
	args := []interface{}{}
	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}
	if filter.Phone != "" {
		query += " AND phone = ?"
		args = append(args, filter.Phone)
	}

	var u model.UserEntity
	err := r.conn.GetContext(ctx, &u, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *SQL) Create(ctx context.Context, user *model.UserEntity) (*model.UserEntity, error) {
	res, err := r.conn.ExecContext(ctx,
		"INSERT INTO user (name, email, phone, address, role, password_hash) VALUES (?, ?, ?, ?, ?, ?)",
		user.Name, user.Email, user.Phone, user.Address, user.Role, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	user.ID = uint64(id)
	return user, nil
}

func (r *SQL) Update(ctx context.Context, user *model.UserEntity) error {
	_, err := r.conn.ExecContext(ctx,
		"UPDATE user SET name = ?, phone = ?, address = ?, date_of_birth = ?, avatar_path = ? WHERE id = ?",
		user.Name, user.Phone, user.Address, user.DateOfBirth, user.AvatarPath, user.ID)
	return err
}
