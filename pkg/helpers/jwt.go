package helpers

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/oksasatya/restaurant-api/internal/domain/entity"
)

// JWTManager handles generation and validation of bearer tokens
type JWTManager struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

func NewJWTManager(secret, issuer string, ttl time.Duration) *JWTManager {
	return &JWTManager{Secret: []byte(secret), Issuer: issuer, TTL: ttl}
}

// Claims mirror the identity fields authorization needs plus profile hints.
type Claims struct {
	UserID      int64  `json:"uid"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	DateOfBirth string `json:"dob,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	jwt.RegisteredClaims
}

func (m *JWTManager) GenerateToken(u *entity.User) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(m.TTL)
	claims := &Claims{
		UserID:      u.ID,
		Name:        u.FullName(),
		Role:        u.RoleName,
		Nationality: u.Nationality,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(u.ID, 10),
			Issuer:    m.Issuer,
			Audience:  jwt.ClaimStrings{m.Issuer},
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	if u.DateOfBirth != nil {
		claims.DateOfBirth = u.DateOfBirth.Format("2006-01-02")
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

func (m *JWTManager) ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	}, jwt.WithIssuer(m.Issuer), jwt.WithAudience(m.Issuer))
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
