package store

import (
	"encoding/json"

	"app/internal/domain/model"
	"app/internal/storage"
)

// Load は起動時に3キーを一度だけ読み込む。
// 壊れて読めない値は「無かったこと」にして空から始める（起動は止めない）。
// 返すのはストレージ自体の読み取りエラーのみ。
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.storage.Get(storage.KeyCart)
	if err != nil {
		return err
	}
	if ok {
		var items []model.CartItem
		if json.Unmarshal([]byte(raw), &items) == nil {
			s.cartItems = items
		}
	}

	raw, ok, err = s.storage.Get(storage.KeyWishlist)
	if err != nil {
		return err
	}
	if ok {
		var list []model.Product
		if json.Unmarshal([]byte(raw), &list) == nil {
			s.wishlist = list
		}
	}

	raw, ok, err = s.storage.Get(storage.KeyUser)
	if err != nil {
		return err
	}
	if ok {
		var u model.User
		if json.Unmarshal([]byte(raw), &u) == nil {
			s.user = &u
		}
	}

	return nil
}

// persistLocked は3キーすべてを書き戻す。
// セッションだけは「未ログイン=キー削除」（空値は書かない）。
func (s *Store) persistLocked() error {
	b, err := json.Marshal(s.cartItemsOrEmpty())
	if err != nil {
		return err
	}
	if err := s.storage.Set(storage.KeyCart, string(b)); err != nil {
		return err
	}

	b, err = json.Marshal(s.wishlistOrEmpty())
	if err != nil {
		return err
	}
	if err := s.storage.Set(storage.KeyWishlist, string(b)); err != nil {
		return err
	}

	if s.user == nil {
		return s.storage.Remove(storage.KeyUser)
	}
	b, err = json.Marshal(s.user)
	if err != nil {
		return err
	}
	return s.storage.Set(storage.KeyUser, string(b))
}

// nilのまま書くと"null"になるので空配列に寄せる
func (s *Store) cartItemsOrEmpty() []model.CartItem {
	if s.cartItems == nil {
		return []model.CartItem{}
	}
	return s.cartItems
}

func (s *Store) wishlistOrEmpty() []model.Product {
	if s.wishlist == nil {
		return []model.Product{}
	}
	return s.wishlist
}
