package store

import (
	"context"
	"fmt"

	"microblog/internal/database"
	"microblog/internal/model"
)

func CreateComment(ctx context.Context, db database.DB, cm *model.Comment) (*model.Comment, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO comments (content, post_id, user_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		cm.Content,
		cm.PostID,
		cm.UserID,
	)
	if err := row.Scan(&cm.ID, &cm.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateComment: %w", err)
	}
	return cm, nil
}

// ListFeedComments 取回所有留言（依 id 排序）並帶作者 Email，供動態牆依貼文分組
func ListFeedComments(ctx context.Context, db database.DB) ([]model.Comment, error) {
	rows, err := db.Query(ctx,
		`SELECT c.id, c.content, c.post_id, c.user_id, c.created_at, u.email
		 FROM comments c
		 JOIN users u ON u.id = c.user_id
		 ORDER BY c.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListFeedComments: %w", err)
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		var cm model.Comment
		if err := rows.Scan(&cm.ID, &cm.Content, &cm.PostID, &cm.UserID, &cm.CreatedAt, &cm.Email); err != nil {
			return nil, fmt.Errorf("ListFeedComments: %w", err)
		}
		comments = append(comments, cm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListFeedComments: %w", err)
	}
	return comments, nil
}
