package model

// カートの明細
// 商品1つにつき1行。数量は常に1以上（0以下になったら行ごと消す）。
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int64   `json:"quantity"`
}
