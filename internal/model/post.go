// File: internal/model/post.go
package model

import "time"

type Post struct {
	ID        int       `db:"id" json:"id"`
	Content   string    `db:"content" json:"content"`
	UserID    int       `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	// 作者 Email（僅在動態牆 JOIN 查詢時填入）
	Email string `db:"email" json:"email,omitempty"`
}
