package store

import (
	"context"
	"fmt"

	"microblog/internal/database"
	"microblog/internal/model"
)

// CreateLike 記錄 user 對 post 按讚；重複按讚為 no-op（ON CONFLICT DO NOTHING）
func CreateLike(ctx context.Context, db database.DB, l *model.Like) error {
	_, err := db.Exec(ctx,
		`INSERT INTO likes (post_id, user_id)
		 VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`,
		l.PostID,
		l.UserID,
	)
	if err != nil {
		return fmt.Errorf("CreateLike: %w", err)
	}
	return nil
}
