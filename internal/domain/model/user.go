package model

// ログイン中のユーザー（セッション）。未ログインは nil で表す。
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar,omitempty"`
	IsSeller bool   `json:"is_seller,omitempty"`
}
