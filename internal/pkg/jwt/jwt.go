package jwt

import (
	"context"
	"time"

	"github.com/distripanel/panel-backend/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service verifies panel access tokens. Tokens are issued by the login
// service; GenerateAccessToken exists for tooling and tests.
type Service interface {
	GenerateAccessToken(userID string, role user.Role) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) GenerateAccessToken(userID string, role user.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    string(role),
		"type":    "access",
		"exp":     expiresAt,
	})
	return tokenString, expiresAt, err
}

// OperatorFromContext reads the verified claims placed by jwtauth.Verifier.
func OperatorFromContext(ctx context.Context) (user.Operator, bool) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil || claims == nil {
		return user.Operator{}, false
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return user.Operator{}, false
	}
	role, _ := claims["role"].(string)

	return user.Operator{ID: userID, Role: user.Role(role)}, true
}

// UserIDFromContext returns nil for unauthenticated calls.
func UserIDFromContext(ctx context.Context) *string {
	op, ok := OperatorFromContext(ctx)
	if !ok {
		return nil
	}
	return &op.ID
}
