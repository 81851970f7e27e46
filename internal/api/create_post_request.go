package api

// 內容允許為空，僅綁定不驗證
// swagger:model api.CreatePostRequest
type CreatePostRequest struct {
	Content string `form:"content" example:"hello"`
}
