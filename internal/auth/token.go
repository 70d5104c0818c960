package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/planit-app/planit-api/internal/models"
)

const tokenIssuerName = "PlanIt_app"

var (
	ErrMissingSecret = errors.New("jwt secret is not configured")
	ErrInvalidToken  = errors.New("invalid token")
)

// Claims is the verified caller identity carried by a token.
type Claims struct {
	Email string
	Role  models.Role
}

// TokenIssuer issues and verifies the bearer tokens carrying caller
// identity. The service layer only issues; parsing happens in middleware.
type TokenIssuer interface {
	Issue(email string, role models.Role) (string, error)
	Parse(token string) (*Claims, error)
}

// JWTIssuer implements TokenIssuer with HS256-signed JWTs.
type JWTIssuer struct {
	secret  []byte
	expires time.Duration
}

// NewJWTIssuer creates a JWTIssuer. A missing secret is a configuration
// error and fails construction.
func NewJWTIssuer(secret string, expires time.Duration) (*JWTIssuer, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &JWTIssuer{secret: []byte(secret), expires: expires}, nil
}

// Issue signs a token carrying the user's email and role.
func (i *JWTIssuer) Issue(email string, role models.Role) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userEmail": email,
		"userRole":  string(role),
		"iss":       tokenIssuerName,
		"iat":       now.Unix(),
		"exp":       now.Add(i.expires).Unix(),
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}
	return signed, nil
}

// Parse verifies a token and extracts the caller identity.
func (i *JWTIssuer) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	email, _ := mapClaims["userEmail"].(string)
	roleValue, _ := mapClaims["userRole"].(string)
	if email == "" || roleValue == "" {
		return nil, ErrInvalidToken
	}

	role, err := models.ParseRole(roleValue)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &Claims{Email: email, Role: role}, nil
}
