package store

import (
	"context"
	"fmt"

	"microblog/internal/database"
	"microblog/internal/model"
)

func CreatePost(ctx context.Context, db database.DB, p *model.Post) (*model.Post, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO posts (content, user_id)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		p.Content,
		p.UserID,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreatePost: %w", err)
	}
	return p, nil
}

// ListFeedPosts 取回所有貼文（新到舊）並帶作者 Email
func ListFeedPosts(ctx context.Context, db database.DB) ([]model.Post, error) {
	rows, err := db.Query(ctx,
		`SELECT p.id, p.content, p.user_id, p.created_at, u.email
		 FROM posts p
		 JOIN users u ON u.id = p.user_id
		 ORDER BY p.created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListFeedPosts: %w", err)
	}
	defer rows.Close()

	var posts []model.Post
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(&p.ID, &p.Content, &p.UserID, &p.CreatedAt, &p.Email); err != nil {
			return nil, fmt.Errorf("ListFeedPosts: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListFeedPosts: %w", err)
	}
	return posts, nil
}
