// File: internal/service/authentication.go
package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"user-accounts/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTTL 存取令牌固定有效一小時
const TokenTTL = time.Hour

// ErrInvalidToken 所有驗證失敗（格式、簽章、過期）都回傳同一個錯誤
var ErrInvalidToken = errors.New("invalid token")

var (
	timeNow         = time.Now
	newTokenID      = uuid.NewString
	parseWithClaims = jwt.ParseWithClaims
)

// CustomClaims 定義 JWT 負載內容
type CustomClaims struct {
	UserID int    `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer 以伺服器持有的密鑰簽發與驗證 HS256 令牌
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: TokenTTL}
}

// Issue 依據使用者 ID 與角色產生 JWT，回傳令牌與到期時間
func (t *TokenIssuer) Issue(userID int, role string) (string, time.Time, error) {
	if len(t.secret) == 0 {
		return "", time.Time{}, fmt.Errorf("signing secret not set")
	}

	now := timeNow()
	expiresAt := now.Add(t.ttl)
	claims := CustomClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        newTokenID(),
			Subject:   strconv.Itoa(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// IssueFor 為使用者簽發令牌
func (t *TokenIssuer) IssueFor(u model.User) (string, time.Time, error) {
	return t.Issue(u.ID, u.Role)
}

// Verify 驗證並解析 JWT 令牌；任何失敗皆回傳 ErrInvalidToken
func (t *TokenIssuer) Verify(tokenString string) (*CustomClaims, error) {
	if tokenString == "" || len(t.secret) == 0 {
		return nil, ErrInvalidToken
	}

	token, err := parseWithClaims(tokenString, &CustomClaims{}, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(timeNow),
	)
	if err != nil || token == nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || claims.UserID <= 0 || claims.Subject != strconv.Itoa(claims.UserID) {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
