package checkout

import (
	"regexp"
	"testing"

	"app/internal/domain/model"
	"app/internal/storage"
	"app/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeWithSubtotal(t *testing.T, price string, qty int64) *store.Store {
	t.Helper()
	s := store.New(storage.NewMemoryStorage())
	s.AddToCart(model.Product{ID: 1, Name: "Product", Price: decimal.RequireFromString(price), InStock: true})
	s.SetCartItemQuantity(1, qty)
	return s
}

func validShipping() model.ShippingAddress {
	return model.ShippingAddress{
		FirstName: "Taro",
		LastName:  "Yamada",
		Email:     "taro@example.com",
		Address:   "1-2-3 Chuo",
		City:      "Osaka",
		State:     "Osaka",
		ZipCode:   "530-0001",
	}
}

// =====================
// 開始ガード
// =====================

func TestBegin_EmptyCartNeverReachesShipping(t *testing.T) {
	s := store.New(storage.NewMemoryStorage())

	flow, err := Begin(s)

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Nil(t, flow)
}

func TestBegin_StartsAtShipping(t *testing.T) {
	s := storeWithSubtotal(t, "10.00", 1)

	flow, err := Begin(s)

	require.NoError(t, err)
	assert.Equal(t, StageShipping, flow.Stage())
}

// =====================
// 配送段階の検証
// =====================

func TestSubmitShipping_AllFieldsRequired(t *testing.T) {
	s := storeWithSubtotal(t, "10.00", 1)
	flow, err := Begin(s)
	require.NoError(t, err)

	// zipだけ空 → 配送段階に留まる
	form := validShipping()
	form.ZipCode = ""

	err = flow.SubmitShipping(form)

	var missing *MissingFieldsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"zip_code"}, missing.Fields)
	assert.Equal(t, StageShipping, flow.Stage())
}

func TestSubmitShipping_BlankIsWhitespace(t *testing.T) {
	s := storeWithSubtotal(t, "10.00", 1)
	flow, err := Begin(s)
	require.NoError(t, err)

	form := validShipping()
	form.City = "   "

	err = flow.SubmitShipping(form)

	var missing *MissingFieldsError
	require.ErrorAs(t, err, &missing)
	assert.Contains(t, missing.Fields, "city")
}

func TestSubmitShipping_PhoneOptional(t *testing.T) {
	s := storeWithSubtotal(t, "10.00", 1)
	flow, err := Begin(s)
	require.NoError(t, err)

	require.NoError(t, flow.SubmitShipping(validShipping()))
	assert.Equal(t, StagePayment, flow.Stage())
}

func TestSubmitShipping_FailureKeepsDraft(t *testing.T) {
	s := storeWithSubtotal(t, "10.00", 1)
	flow, err := Begin(s)
	require.NoError(t, err)

	form := validShipping()
	form.ZipCode = ""
	_ = flow.SubmitShipping(form)

	// 入力済みの値は失敗しても残る
	assert.Equal(t, "Taro", flow.ShippingDraft().FirstName)
	assert.Equal(t, "Osaka", flow.ShippingDraft().City)
}

// =====================
// 支払い段階・後退
// =====================

func TestSubmitPayment_AdvancesToReview(t *testing.T) {
	s := storeWithSubtotal(t, "10.00", 1)
	flow, err := Begin(s)
	require.NoError(t, err)
	require.NoError(t, flow.SubmitShipping(validShipping()))

	// カード項目は未入力でも通る（モック）
	require.NoError(t, flow.SubmitPayment(PaymentForm{Method: model.PaymentMethodPaypal}))
	assert.Equal(t, StageReview, flow.Stage())
}

func TestSubmitPayment_UnknownMethod(t *testing.T) {
	s := storeWithSubtotal(t, "10.00", 1)
	flow, err := Begin(s)
	require.NoError(t, err)
	require.NoError(t, flow.SubmitShipping(validShipping()))

	err = flow.SubmitPayment(PaymentForm{Method: "bitcoin"})

	assert.ErrorIs(t, err, ErrUnknownPaymentMethod)
	assert.Equal(t, StagePayment, flow.Stage())
}

func TestSubmitPayment_WrongStage(t *testing.T) {
	s := storeWithSubtotal(t, "10.00", 1)
	flow, err := Begin(s)
	require.NoError(t, err)

	err = flow.SubmitPayment(PaymentForm{Method: model.PaymentMethodCard})

	assert.ErrorIs(t, err, ErrWrongStage)
}

func TestBack_PreservesDrafts(t *testing.T) {
	s := storeWithSubtotal(t, "10.00", 1)
	flow, err := Begin(s)
	require.NoError(t, err)
	require.NoError(t, flow.SubmitShipping(validShipping()))
	require.NoError(t, flow.SubmitPayment(PaymentForm{Method: model.PaymentMethodCard, CardName: "TARO YAMADA"}))

	// review → payment → shipping
	require.NoError(t, flow.Back())
	assert.Equal(t, StagePayment, flow.Stage())
	assert.Equal(t, "TARO YAMADA", flow.PaymentDraft().CardName)

	require.NoError(t, flow.Back())
	assert.Equal(t, StageShipping, flow.Stage())
	assert.Equal(t, "Taro", flow.ShippingDraft().FirstName)

	// 配送段階からはもう戻れない
	assert.ErrorIs(t, flow.Back(), ErrWrongStage)
}

// =====================
// 金額計算
// =====================

func TestQuote_BelowFreeShippingThreshold(t *testing.T) {
	q := NewQuote(decimal.RequireFromString("45.00"))

	assert.True(t, q.Shipping.Equal(decimal.RequireFromString("5")), "shipping = %s", q.Shipping)
	assert.True(t, q.Tax.Equal(decimal.RequireFromString("3.60")), "tax = %s", q.Tax)
	assert.True(t, q.Total.Equal(decimal.RequireFromString("53.60")), "total = %s", q.Total)
}

func TestQuote_FreeShippingAtThreshold(t *testing.T) {
	q := NewQuote(decimal.RequireFromString("60.00"))

	assert.True(t, q.Shipping.IsZero())
	assert.True(t, q.Tax.Equal(decimal.RequireFromString("4.80")), "tax = %s", q.Tax)
	assert.True(t, q.Total.Equal(decimal.RequireFromString("64.80")), "total = %s", q.Total)
}

func TestQuote_ExactlyFifty(t *testing.T) {
	q := NewQuote(decimal.RequireFromString("50.00"))
	assert.True(t, q.Shipping.IsZero(), "50ちょうどで送料無料")
}

func TestQuote_ComputedOnReviewEntry(t *testing.T) {
	s := storeWithSubtotal(t, "45.00", 1)
	flow, err := Begin(s)
	require.NoError(t, err)
	require.NoError(t, flow.SubmitShipping(validShipping()))

	_, ok := flow.Quote()
	assert.False(t, ok, "確認段階の前に金額は無い")

	require.NoError(t, flow.SubmitPayment(PaymentForm{Method: model.PaymentMethodCard}))

	q, ok := flow.Quote()
	require.True(t, ok)
	assert.True(t, q.Total.Equal(decimal.RequireFromString("53.60")))
}

// =====================
// 注文確定
// =====================

func TestPlaceOrder_ClearsCart(t *testing.T) {
	s := storeWithSubtotal(t, "45.00", 1)
	flow, err := Begin(s)
	require.NoError(t, err)
	require.NoError(t, flow.SubmitShipping(validShipping()))
	require.NoError(t, flow.SubmitPayment(PaymentForm{Method: model.PaymentMethodCard}))

	order, err := flow.PlaceOrder()

	require.NoError(t, err)
	assert.Empty(t, s.CartItems(), "確定後カートは必ず空")
	assert.True(t, order.Total.Equal(decimal.RequireFromString("53.60")))
	assert.Equal(t, model.PaymentMethodCard, order.PaymentMethod)
	assert.Equal(t, "Taro", order.ShipTo.FirstName)
	require.Len(t, order.Items, 1, "注文には確定時点の明細が残る")
}

func TestPlaceOrder_NumberFormat(t *testing.T) {
	s := storeWithSubtotal(t, "10.00", 1)
	flow, err := Begin(s)
	require.NoError(t, err)
	require.NoError(t, flow.SubmitShipping(validShipping()))
	require.NoError(t, flow.SubmitPayment(PaymentForm{Method: model.PaymentMethodCard}))

	order, err := flow.PlaceOrder()

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^ORD-\d{6}$`), order.Number)
}

func TestPlaceOrder_BeforeReview(t *testing.T) {
	s := storeWithSubtotal(t, "10.00", 1)
	flow, err := Begin(s)
	require.NoError(t, err)

	_, err = flow.PlaceOrder()
	assert.ErrorIs(t, err, ErrWrongStage)
}

func TestPlaceOrder_Twice(t *testing.T) {
	s := storeWithSubtotal(t, "10.00", 1)
	flow, err := Begin(s)
	require.NoError(t, err)
	require.NoError(t, flow.SubmitShipping(validShipping()))
	require.NoError(t, flow.SubmitPayment(PaymentForm{Method: model.PaymentMethodCard}))

	_, err = flow.PlaceOrder()
	require.NoError(t, err)

	_, err = flow.PlaceOrder()
	assert.ErrorIs(t, err, ErrOrderPlaced)
}
