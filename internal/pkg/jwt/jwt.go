package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// ErrNoPrincipal is returned when the request context carries no signed-in principal.
var ErrNoPrincipal = errors.New("no signed-in principal in context")

// Principal is the signed-in caller as carried by the access token.
type Principal struct {
	UserID      string
	Email       string
	IsAdmin     bool
	IsAnonymous bool
}

type Service interface {
	GenerateAccessToken(p Principal) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpirationTime time.Duration
	tokenAuth                 *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// NewJWTService expects accessTokenExpirationTime to be a valid time.Duration string;
// config validation guarantees it, anything else falls back to one hour.
func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	exp, err := time.ParseDuration(accessTokenExpirationTime)
	if err != nil || exp <= 0 {
		exp = time.Hour
	}
	return &JWTService{
		accessTokenExpirationTime: exp,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) GenerateAccessToken(p Principal) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(j.accessTokenExpirationTime).Unix()

	claims := map[string]interface{}{
		"user_id":      p.UserID,
		"email":        p.Email,
		"is_admin":     p.IsAdmin,
		"is_anonymous": p.IsAnonymous,
		"type":         "access",
		"exp":          expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// PrincipalFromContext reads the principal placed in ctx by jwtauth.Verifier.
func PrincipalFromContext(ctx context.Context) (Principal, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Principal{}, err
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Principal{}, ErrNoPrincipal
	}

	email, _ := claims["email"].(string)
	isAdmin, _ := claims["is_admin"].(bool)
	isAnonymous, _ := claims["is_anonymous"].(bool)

	return Principal{
		UserID:      userID,
		Email:       email,
		IsAdmin:     isAdmin,
		IsAnonymous: isAnonymous,
	}, nil
}
