package credentials

import (
	"fmt"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
	"github.com/sahayog/sahayog-api/internal/shared/config"
	"github.com/sahayog/sahayog-api/internal/shared/logutil"
)

type jwtClaims struct {
	jwt.StandardClaims

	UserID          uint   `json:"userId"`
	Email           string `json:"email"`
	TenantID        *uint  `json:"tenantId,omitempty"`
	RoleID          uint   `json:"roleId"`
	IsPlatformAdmin bool   `json:"isPlatformAdmin,omitempty"`
}

type JWTVerifier struct {
	log    logutil.Log
	secret []byte
}

func NewJWTVerifier(cfg config.Config, log logutil.Log) (*JWTVerifier, error) {
	secret := cfg.GetString("JWT_SECRET")
	if len(secret) <= 8 {
		return nil, errors.New("too short JWT_SECRET in config")
	}

	return &JWTVerifier{
		log:    log,
		secret: []byte(secret),
	}, nil
}

func (v JWTVerifier) Verify(bearerToken string) (*Claims, error) {
	if bearerToken == "" {
		return nil, errors.New("no bearer token")
	}

	var claims jwtClaims
	token, err := jwt.ParseWithClaims(bearerToken, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.UserID == 0 {
		return nil, errors.New("token has no user id")
	}

	return &Claims{
		UserID:          claims.UserID,
		Email:           claims.Email,
		TenantID:        claims.TenantID,
		RoleID:          claims.RoleID,
		IsPlatformAdmin: claims.IsPlatformAdmin,
	}, nil
}
