package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Claims are custom claims extending standard jwt.RegisteredClaims
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues, verifies and refreshes bearer tokens. The signing
// secret and token lifetime are fixed at construction.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a new TokenService
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token binding the user's identity and role.
func (s *TokenService) Issue(userID primitive.ObjectID, email, role string) (string, error) {
	claims := &Claims{
		UserID: userID.Hex(),
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}
	return t, nil
}

// Verify validates the signature and registered claims. An expired token
// fails here; callers that need to distinguish expiry use IsExpired and
// VerifyIgnoringExpiry.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// VerifyIgnoringExpiry validates the signature but skips registered-claims
// validation, so an expired token with a genuine signature still decodes.
func (s *TokenService) VerifyIgnoringExpiry(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, err := parser.ParseWithClaims(tokenString, claims, s.keyFunc); err != nil {
		return nil, err
	}
	return claims, nil
}

// DecodeUnsafe decodes claims without verifying the signature. It must
// never be used to authorize access.
func (s *TokenService) DecodeUnsafe(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// IsExpired reports whether the token is past its expiry. Any verification
// failure is treated as expired.
func (s *TokenService) IsExpired(tokenString string) bool {
	claims, err := s.Verify(tokenString)
	if err != nil {
		return true
	}
	return claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now())
}

// Refresh re-issues an expired token with a fresh expiry. The signature of
// the old token is verified first; only the expiry check is relaxed, so a
// token that was never genuinely signed cannot be refreshed.
func (s *TokenService) Refresh(tokenString string) (string, error) {
	claims, err := s.VerifyIgnoringExpiry(tokenString)
	if err != nil {
		return "", fmt.Errorf("refresh: %w", err)
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return "", fmt.Errorf("refresh: invalid user id in claims: %w", err)
	}
	return s.Issue(userID, claims.Email, claims.Role)
}

func (s *TokenService) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return s.secret, nil
}
