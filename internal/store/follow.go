package store

import (
	"context"
	"fmt"

	"microblog/internal/database"
	"microblog/internal/model"
)

// CreateFollow 記錄追蹤關係；重複追蹤為 no-op（ON CONFLICT DO NOTHING）
func CreateFollow(ctx context.Context, db database.DB, f *model.Follow) error {
	_, err := db.Exec(ctx,
		`INSERT INTO follows (follower_id, following_id)
		 VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`,
		f.FollowerID,
		f.FollowingID,
	)
	if err != nil {
		return fmt.Errorf("CreateFollow: %w", err)
	}
	return nil
}
