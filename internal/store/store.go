package store

import (
	"sync"

	"app/internal/domain/model"
	"app/internal/storage"

	"github.com/shopspring/decimal"
)

// Snapshot は購読者へ渡す読み取り専用コピー。
type Snapshot struct {
	Products  []model.Product
	CartItems []model.CartItem
	Wishlist  []model.Product
	User      *model.User
}

// Listener は変更のたびに同期的に呼ばれる。
// 中からStoreの書き込みを呼び返してはいけない。
type Listener func(Snapshot)

// Store はカタログ・カート・ウィッシュリスト・セッションの唯一の保持者。
// 書き込みはすべてここを通り、変更のたびに同期でストレージへ書き戻す。
type Store struct {
	mu        sync.Mutex
	storage   storage.Storage
	products  []model.Product
	cartItems []model.CartItem
	wishlist  []model.Product
	user      *model.User
	listeners []Listener
}

// DI
func New(st storage.Storage) *Store {
	return &Store{storage: st}
}

// Seed はカタログを投入する（起動時に1回）。
func (s *Store) Seed(products []model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append([]model.Product(nil), products...)
}

// Subscribe は変更通知の購読を登録する。解除は無し（プロセス寿命）。
func (s *Store) Subscribe(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// ========== カート ==========

// AddToCart はカートに追加する。同一商品は数量+1。
func (s *Store) AddToCart(p model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cartItems {
		if s.cartItems[i].Product.ID == p.ID {
			s.setCartItemQuantityLocked(p.ID, s.cartItems[i].Quantity+1)
			s.commit()
			return
		}
	}

	s.cartItems = append(s.cartItems, model.CartItem{Product: p, Quantity: 1})
	s.commit()
}

// RemoveFromCart は明細を削除する。無ければ何もしない。
func (s *Store) RemoveFromCart(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeFromCartLocked(productID)
	s.commit()
}

// SetCartItemQuantity は数量を上書きする（加算ではない）。
// 0以下なら明細ごと削除。明細が無いときは何もしない（新規作成はしない）。
func (s *Store) SetCartItemQuantity(productID int64, quantity int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setCartItemQuantityLocked(productID, quantity)
	s.commit()
}

// ClearCart はカートを空にする。
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartItems = nil
	s.commit()
}

func (s *Store) removeFromCartLocked(productID int64) {
	kept := s.cartItems[:0]
	for _, it := range s.cartItems {
		if it.Product.ID != productID {
			kept = append(kept, it)
		}
	}
	s.cartItems = kept
}

func (s *Store) setCartItemQuantityLocked(productID int64, quantity int64) {
	if quantity <= 0 {
		s.removeFromCartLocked(productID)
		return
	}
	for i := range s.cartItems {
		if s.cartItems[i].Product.ID == productID {
			s.cartItems[i].Quantity = quantity
			return
		}
	}
}

// ========== ウィッシュリスト ==========

// AddToWishlist は追加する。既にあれば何もしない（冪等）。
func (s *Store) AddToWishlist(p model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isInWishlistLocked(p.ID) {
		return
	}
	s.wishlist = append(s.wishlist, p)
	s.commit()
}

// RemoveFromWishlist は削除する。無ければ何もしない。
func (s *Store) RemoveFromWishlist(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeFromWishlistLocked(productID)
	s.commit()
}

// MoveToCart はウィッシュリストの商品をカートへ移す（1回のコミットで両方更新）。
// ウィッシュリストに無いときは false。
func (s *Store) MoveToCart(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var found *model.Product
	for i := range s.wishlist {
		if s.wishlist[i].ID == productID {
			found = &s.wishlist[i]
			break
		}
	}
	if found == nil {
		return false
	}

	p := *found
	exists := false
	for i := range s.cartItems {
		if s.cartItems[i].Product.ID == p.ID {
			s.cartItems[i].Quantity++
			exists = true
			break
		}
	}
	if !exists {
		s.cartItems = append(s.cartItems, model.CartItem{Product: p, Quantity: 1})
	}

	s.removeFromWishlistLocked(productID)
	s.commit()
	return true
}

func (s *Store) removeFromWishlistLocked(productID int64) {
	kept := s.wishlist[:0]
	for _, p := range s.wishlist {
		if p.ID != productID {
			kept = append(kept, p)
		}
	}
	s.wishlist = kept
}

func (s *Store) isInWishlistLocked(productID int64) bool {
	for _, p := range s.wishlist {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// ========== セッション ==========

// Login はセッションを丸ごと入れ替える（マージしない）。
func (s *Store) Login(u model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := u
	s.user = &user
	s.commit()
}

// Logout はセッションを消す。ストレージのuserキーも削除される。
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.commit()
}

// ========== カタログ ==========

// AddProduct は出品（セラー機能）。次のIDを採番してカタログへ追加する。
// カタログ自体は永続化しない。
func (s *Store) AddProduct(p model.Product) model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	var maxID int64
	for _, existing := range s.products {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	p.ID = maxID + 1
	s.products = append(s.products, p)
	s.commit()
	return p
}

// ========== 読み取り ==========

// CartTotal は小計（price×quantityの合計）。保存せず毎回計算する。
func (s *Store) CartTotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartTotalLocked()
}

func (s *Store) cartTotalLocked() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.cartItems {
		total = total.Add(it.Product.Price.Mul(decimal.NewFromInt(it.Quantity)))
	}
	return total
}

// GetCartItemQuantity は明細の数量を返す。無ければ0。
func (s *Store) GetCartItemQuantity(productID int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.cartItems {
		if it.Product.ID == productID {
			return it.Quantity
		}
	}
	return 0
}

func (s *Store) IsInWishlist(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isInWishlistLocked(productID)
}

// Products はカタログのコピーを返す。
func (s *Store) Products() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Product(nil), s.products...)
}

// FindProduct はIDでカタログを引く。
func (s *Store) FindProduct(productID int64) (model.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == productID {
			return p, true
		}
	}
	return model.Product{}, false
}

// CartItems はカートのコピーを返す。
func (s *Store) CartItems() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.CartItem(nil), s.cartItems...)
}

// Wishlist はウィッシュリストのコピーを返す。
func (s *Store) Wishlist() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Product(nil), s.wishlist...)
}

// User はセッションのコピーを返す。未ログインはnil。
func (s *Store) User() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// commit は変更のたびに呼ぶ。保存→購読者へ通知の順。
// 保存はbest-effort（localStorage相当で、失敗しても状態は進める）。
func (s *Store) commit() {
	_ = s.persistLocked()
	snap := s.snapshotLocked()
	for _, fn := range s.listeners {
		fn(snap)
	}
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		Products:  append([]model.Product(nil), s.products...),
		CartItems: append([]model.CartItem(nil), s.cartItems...),
		Wishlist:  append([]model.Product(nil), s.wishlist...),
	}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}
