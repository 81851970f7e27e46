// File: internal/dto/feed.go
package dto

// FeedPost 為動態牆攤平後的顯示結構：貼文加作者資訊與巢狀留言
// UserID 為作者 id，供追蹤表單組出目標路徑
type FeedPost struct {
	ID       int           `json:"id"`
	UserID   int           `json:"user_id"`
	Content  string        `json:"content"`
	Email    string        `json:"email"`
	Comments []FeedComment `json:"comments"`
}

// FeedComment 為單則留言的顯示結構
type FeedComment struct {
	Content string `json:"content"`
	Email   string `json:"email"`
}
