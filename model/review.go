package model

import "time"

// ReviewEntity is post-delivery feedback, at most one per (order, user); a
// second submission overwrites rating and comment.
type ReviewEntity struct {
	ID        uint64     `db:"id" json:"id"`
	OrderID   uint64     `db:"order_id" json:"order_id"`
	UserID    uint64     `db:"user_id" json:"user_id"`
	Rating    int        `db:"rating" json:"rating"`
	Comment   string     `db:"comment" json:"comment"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}
