package checkout

import "github.com/shopspring/decimal"

// 金額ルール。小計50以上で送料無料、それ未満は一律5。税は8%。
var (
	freeShippingAt = decimal.NewFromInt(50)
	flatShipping   = decimal.NewFromInt(5)
	taxRate        = decimal.RequireFromString("0.08")
)

// Quote は確認段階に入った時点の金額内訳。保存せず都度計算する。
type Quote struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

func NewQuote(subtotal decimal.Decimal) Quote {
	shipping := flatShipping
	if subtotal.GreaterThanOrEqual(freeShippingAt) {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(taxRate)

	return Quote{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}
