package model

import (
	"fmt"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vaxbook/pkg/domain/types"
)

// Claims are the account attributes carried in the backend access token
type Claims struct {
	Subject   string     `json:"sub" firestore:"sub"`
	Username  string     `json:"username" firestore:"username"`
	Role      types.Role `json:"role" firestore:"role"`
	ExpiresAt time.Time  `json:"exp" firestore:"exp"`
}

// ParseClaims decodes the payload of a backend JWT. The signature is not
// verified: the backend issued the token and is the only party that consumes
// it. Expiration is still checked.
func ParseClaims(token types.AccessToken) (*Claims, error) {
	if token == "" {
		return nil, goerr.Wrap(ErrUnauthorized, "token is empty")
	}

	tok, err := jwt.ParseString(token.String(),
		jwt.WithVerify(false),
		jwt.WithValidate(true),
	)
	if err != nil {
		return nil, goerr.Wrap(ErrUnauthorized, "failed to parse token",
			goerr.V("reason", err.Error()))
	}

	claims := &Claims{
		Subject:   tok.Subject(),
		ExpiresAt: tok.Expiration(),
	}
	if v, ok := tok.Get("username"); ok {
		claims.Username = fmt.Sprint(v)
	}
	if claims.Username == "" {
		claims.Username = claims.Subject
	}
	if v, ok := tok.Get("role"); ok {
		claims.Role = types.ParseRole(fmt.Sprint(v))
	}

	return claims, nil
}
