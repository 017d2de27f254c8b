package storage

// 永続キー（localStorage相当の固定キー名）
const (
	KeyCart     = "cart"
	KeyWishlist = "wishlist"
	KeyUser     = "user"
)

// Storage は文字列キーの永続ストア。呼び出すのはStoreだけ。
type Storage interface {
	Get(key string) (value string, ok bool, err error)
	Set(key string, value string) error
	Remove(key string) error
}
