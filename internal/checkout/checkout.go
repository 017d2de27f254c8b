package checkout

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"app/internal/domain/model"
	"app/internal/store"
)

// チェックアウトの段階。前進は配送→支払い→確認の一方向のみ。
type Stage string

const (
	StageShipping Stage = "shipping"
	StagePayment  Stage = "payment"
	StageReview   Stage = "review"
	StagePlaced   Stage = "placed"
)

var (
	// カートが空のままフローに入ろうとした
	ErrEmptyCart = errors.New("cart is empty")

	// 今の段階では許されない操作
	ErrWrongStage = errors.New("operation not allowed in current stage")

	// 確定済みフローへの再操作
	ErrOrderPlaced = errors.New("order already placed")

	// 不明な支払い方法
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
)

// 必須項目が空だったときのエラー。足りない項目名を持つ。
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// 支払い段階の入力。card以外はカード項目を見ない。
// モックなのでカード番号等の正しさは検証しない。
type PaymentForm struct {
	Method     model.PaymentMethod `json:"method"`
	CardNumber string              `json:"card_number,omitempty"`
	CardName   string              `json:"card_name,omitempty"`
	Expiry     string              `json:"expiry,omitempty"`
	CVC        string              `json:"cvc,omitempty"`
}

// Flow は1回の注文ぶんのチェックアウト。
// 下書き（shipping/payment）はBackで戻っても消えない。
// validShipping は配送段階を通過したときだけ入り、
// quote は確認段階に入った時点のカートから計算される。
type Flow struct {
	store *store.Store
	stage Stage

	shipping model.ShippingAddress
	payment  PaymentForm

	validShipping *model.ShippingAddress
	quote         *Quote
}

// Begin はフローを開始する。カートが空なら段階に入らず失敗する。
func Begin(st *store.Store) (*Flow, error) {
	if len(st.CartItems()) == 0 {
		return nil, ErrEmptyCart
	}
	return &Flow{
		store:   st,
		stage:   StageShipping,
		payment: PaymentForm{Method: model.PaymentMethodCard},
	}, nil
}

func (f *Flow) Stage() Stage {
	return f.stage
}

// ShippingDraft は入力途中の値（再表示用）。
func (f *Flow) ShippingDraft() model.ShippingAddress {
	return f.shipping
}

func (f *Flow) PaymentDraft() PaymentForm {
	return f.payment
}

// Quote は確認段階に入って以降だけ返る。
func (f *Flow) Quote() (Quote, bool) {
	if f.quote == nil {
		return Quote{}, false
	}
	return *f.quote, true
}

// SubmitShipping は必須7項目（電話以外）の入力を検証して支払い段階へ進む。
// 失敗しても入力値は保持したまま配送段階に留まる。形式チェックはしない。
func (f *Flow) SubmitShipping(form model.ShippingAddress) error {
	if f.stage == StagePlaced {
		return ErrOrderPlaced
	}
	if f.stage != StageShipping {
		return ErrWrongStage
	}

	f.shipping = form

	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"first_name", form.FirstName},
		{"last_name", form.LastName},
		{"email", form.Email},
		{"address", form.Address},
		{"city", form.City},
		{"state", form.State},
		{"zip_code", form.ZipCode},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}

	valid := form
	f.validShipping = &valid
	f.stage = StagePayment
	return nil
}

// SubmitPayment は支払い方法を受けて確認段階へ進む。
// モックフローなのでカード項目の中身は検証しない。
// 確認段階に入るこの時点でカートから金額を計算する。
func (f *Flow) SubmitPayment(form PaymentForm) error {
	if f.stage == StagePlaced {
		return ErrOrderPlaced
	}
	if f.stage != StagePayment {
		return ErrWrongStage
	}

	switch form.Method {
	case model.PaymentMethodCard, model.PaymentMethodPaypal:
	default:
		return ErrUnknownPaymentMethod
	}

	f.payment = form

	q := NewQuote(f.store.CartTotal())
	f.quote = &q
	f.stage = StageReview
	return nil
}

// Back は1段階戻る。下書きは消えない。
// 配送段階（と確定後）ではこれ以上戻れない。
func (f *Flow) Back() error {
	switch f.stage {
	case StagePayment:
		f.stage = StageShipping
		return nil
	case StageReview:
		f.quote = nil
		f.stage = StagePayment
		return nil
	case StagePlaced:
		return ErrOrderPlaced
	default:
		return ErrWrongStage
	}
}

// PlaceOrder は注文を確定する。カートを空にし、確認画面用のサマリを返す。
// 以降このフローは操作できない。
func (f *Flow) PlaceOrder() (model.Order, error) {
	if f.stage == StagePlaced {
		return model.Order{}, ErrOrderPlaced
	}
	if f.stage != StageReview {
		return model.Order{}, ErrWrongStage
	}

	order := model.Order{
		Number:        newOrderNumber(),
		Items:         f.store.CartItems(),
		Subtotal:      f.quote.Subtotal,
		Shipping:      f.quote.Shipping,
		Tax:           f.quote.Tax,
		Total:         f.quote.Total,
		PaymentMethod: f.payment.Method,
		ShipTo:        *f.validShipping,
		PlacedAt:      time.Now(),
	}

	f.store.ClearCart()
	f.stage = StagePlaced
	return order, nil
}

// 注文番号は ORD- + 6桁の乱数。グローバル一意までは保証しない（モック）。
func newOrderNumber() string {
	return fmt.Sprintf("ORD-%d", 100000+rand.IntN(900000))
}
