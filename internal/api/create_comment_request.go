package api

// 內容允許為空，僅綁定不驗證
// swagger:model api.CreateCommentRequest
type CreateCommentRequest struct {
	Content string `form:"content" example:"nice post"`
}
