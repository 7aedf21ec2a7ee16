package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vorobeiDev/goit-pythonweb-hw-12/domain"
)

// Action tokens authorize one-time email actions and always expire in 7 days.
const actionTokenTTL = 7 * 24 * time.Hour

// JWTServiceImpl implements domain.TokenService
type JWTServiceImpl struct {
	secretKey []byte
	issuer    string
	accessTTL time.Duration
}

// NewJWTService creates a new JWT service
func NewJWTService(secretKey, issuer string, accessTTL time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		accessTTL: accessTTL,
	}
}

// GenerateAccessToken implements domain.TokenService
func (j *JWTServiceImpl) GenerateAccessToken(email, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  email,
		"role": role,
		"iss":  j.issuer,
		"iat":  now.Unix(),
		"exp":  now.Add(j.accessTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// GenerateActionToken implements domain.TokenService
func (j *JWTServiceImpl) GenerateActionToken(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": email,
		"iss": j.issuer,
		"iat": now.Unix(),
		"exp": now.Add(actionTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// ValidateAccessToken implements domain.TokenService
func (j *JWTServiceImpl) ValidateAccessToken(tokenString string) (*domain.AccessClaims, error) {
	claims, err := j.parse(tokenString)
	if err != nil {
		return nil, err
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, domain.ErrTokenMalformed
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return nil, domain.ErrTokenMalformed
	}

	access := &domain.AccessClaims{
		Subject: sub,
		Role:    role,
	}
	if iat, ok := claims["iat"].(float64); ok {
		access.IssuedAt = int64(iat)
	}
	if exp, ok := claims["exp"].(float64); ok {
		access.ExpiresAt = int64(exp)
	}
	return access, nil
}

// ValidateActionToken implements domain.TokenService
func (j *JWTServiceImpl) ValidateActionToken(tokenString string) (*domain.ActionClaims, error) {
	claims, err := j.parse(tokenString)
	if err != nil {
		return nil, err
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, domain.ErrTokenMalformed
	}

	action := &domain.ActionClaims{
		Subject: sub,
	}
	if iat, ok := claims["iat"].(float64); ok {
		action.IssuedAt = int64(iat)
	}
	if exp, ok := claims["exp"].(float64); ok {
		action.ExpiresAt = int64(exp)
	}
	return action, nil
}

// parse verifies the signature and expiry and returns the raw claim map.
// The codec consults nothing but the secret and the payload.
func (j *JWTServiceImpl) parse(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenMalformed
		}
		return j.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}

	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	// jwt.Parse already rejects expired tokens, this guards tokens without exp
	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}
	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, domain.ErrTokenExpired
	}

	return claims, nil
}
