package auth

import (
	"errors"
	"net/mail"
	"strings"
	"sync"
	"time"

	"app/internal/domain/model"
)

var (
	// 入力が不正
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrNameRequired       = errors.New("name is required")

	// 競合
	ErrEmailAlreadyExists = errors.New("email already exists")

	// メールまたはパスワードが違う
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UUID 等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// サインアップの入力
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Avatar   string
	IsSeller bool
}

// ログインの入力
type LoginInput struct {
	Email    string
	Password string
}

// ログインの出力。tokenはhandlerがそのままJSONで返す。
type LoginOutput struct {
	User      model.User
	Token     string
	ExpiresAt time.Time
}

// Service はモック認証。アカウントはメモリ上にのみ存在し、
// プロセスが落ちれば消える（バックエンド無しのデモ）。
type Service struct {
	mu       sync.Mutex
	accounts map[string]*account // key: email（小文字）

	hasher   PasswordHasher
	verifier PasswordVerifier
	issuer   TokenIssuer
	idGen    IDGenerator
	clock    Clock
}

type account struct {
	user         model.User
	passwordHash string
}

// DI
func NewService(
	hasher PasswordHasher,
	verifier PasswordVerifier,
	issuer TokenIssuer,
	idGen IDGenerator,
	clock Clock,
) *Service {
	return &Service{
		accounts: map[string]*account{},
		hasher:   hasher,
		verifier: verifier,
		issuer:   issuer,
		idGen:    idGen,
		clock:    clock,
	}
}

// Signup は会員登録。emailの形式と最低8文字のパスワードだけ見る。
func (s *Service) Signup(in SignupInput) (model.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if name == "" {
		return model.User{}, ErrNameRequired
	}
	if !isValidEmailFormat(email) {
		return model.User{}, ErrInvalidEmailFormat
	}
	if len(in.Password) < 8 {
		return model.User{}, ErrPasswordTooShort
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return model.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[email]; exists {
		return model.User{}, ErrEmailAlreadyExists
	}

	u := model.User{
		ID:       s.idGen.NewID(),
		Name:     name,
		Email:    email,
		Avatar:   in.Avatar,
		IsSeller: in.IsSeller,
	}
	s.accounts[email] = &account{user: u, passwordHash: hash}
	return u, nil
}

// Login は照合に成功したらユーザーとセッショントークンを返す。
func (s *Service) Login(in LoginInput) (LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return LoginOutput{}, ErrInvalidCredentials
	}

	s.mu.Lock()
	acc, ok := s.accounts[email]
	s.mu.Unlock()
	if !ok {
		return LoginOutput{}, ErrInvalidCredentials
	}

	if !s.verifier.Verify(in.Password, acc.passwordHash) {
		return LoginOutput{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.issuer.Issue(acc.user, s.clock.Now())
	if err != nil {
		return LoginOutput{}, err
	}

	return LoginOutput{User: acc.user, Token: token, ExpiresAt: expiresAt}, nil
}

// emailの形式チェック
func isValidEmailFormat(s string) bool {
	_, err := mail.ParseAddress(s)
	return err == nil
}
