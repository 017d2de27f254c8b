package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =====================
// テスト用の部品
// =====================

type fixedIDGen struct{ id string }

func (g *fixedIDGen) NewID() string { return g.id }

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

const testSecret = "test_secret"

func newTestService() *Service {
	// テストなのでcostは最小
	return NewService(
		NewBcryptPasswordHasher(4),
		NewBcryptPasswordVerifier(),
		NewJWTIssuer(testSecret, time.Hour),
		&fixedIDGen{id: "user-1"},
		&fixedClock{now: time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)},
	)
}

func TestSignup_Success(t *testing.T) {
	svc := newTestService()

	u, err := svc.Signup(SignupInput{
		Name:     "Taro Yamada",
		Email:    "Taro@Example.com",
		Password: "password123",
		IsSeller: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "user-1", u.ID)
	assert.Equal(t, "taro@example.com", u.Email, "emailは小文字に正規化")
	assert.True(t, u.IsSeller)
}

func TestSignup_Validation(t *testing.T) {
	svc := newTestService()

	_, err := svc.Signup(SignupInput{Name: "", Email: "a@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.Signup(SignupInput{Name: "Taro", Email: "not-an-email", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidEmailFormat)

	_, err = svc.Signup(SignupInput{Name: "Taro", Email: "a@example.com", Password: "short"})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc := newTestService()

	_, err := svc.Signup(SignupInput{Name: "Taro", Email: "taro@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Signup(SignupInput{Name: "Jiro", Email: "taro@example.com", Password: "password456"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	svc := newTestService()
	_, err := svc.Signup(SignupInput{Name: "Taro", Email: "taro@example.com", Password: "password123", IsSeller: true})
	require.NoError(t, err)

	out, err := svc.Login(LoginInput{Email: "taro@example.com", Password: "password123"})

	require.NoError(t, err)
	assert.Equal(t, "taro@example.com", out.User.Email)
	require.NotEmpty(t, out.Token)

	// 発行されたJWTが検証でき、クレームが入っていること
	token, err := jwt.Parse(out.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "user-1", claims["sub"])
	assert.Equal(t, true, claims["is_seller"])
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestService()
	_, err := svc.Signup(SignupInput{Name: "Taro", Email: "taro@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Login(LoginInput{Email: "taro@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestService()

	_, err := svc.Login(LoginInput{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
