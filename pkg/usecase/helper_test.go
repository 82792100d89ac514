package usecase_test

import (
	"testing"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/vaxbook/pkg/domain/types"
)

func newTestToken(t *testing.T, username, role string, exp time.Time) types.AccessToken {
	t.Helper()
	tok, err := jwt.NewBuilder().
		Subject(username).
		Expiration(exp).
		Claim("username", username).
		Claim("role", role).
		Build()
	gt.NoError(t, err).Required()

	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, []byte("test-key")))
	gt.NoError(t, err).Required()
	return types.AccessToken(signed)
}
