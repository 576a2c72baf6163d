package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pctx "Forum/pkg/context"
	"Forum/pkg/jwt"
	"Forum/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokens struct {
	service.ITokenService
	users  map[string]int64
	nonces map[string]bool
}

func (f *fakeTokens) CheckNonce(_ context.Context, nonce, _ string) bool {
	if f.nonces[nonce] {
		return false
	}
	f.nonces[nonce] = true
	return true
}

func (f *fakeTokens) Resolve(_ context.Context, token string) (int64, bool, error) {
	uid, ok := f.users[token]
	return uid, ok, nil
}

func newAuthEngine(secret []byte, tokens service.ITokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", Auth(secret, tokens), func(c *gin.Context) {
		uid, err := pctx.GetUserID(c)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"uid": uid})
	})
	return r
}

func TestAuth(t *testing.T) {
	secret := []byte("test-secret")
	tokens := &fakeTokens{users: map[string]int64{"tok": 9}, nonces: map[string]bool{}}
	r := newAuthEngine(secret, tokens)

	do := func(header map[string]string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		for k, v := range header {
			req.Header.Set(k, v)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("missing credentials", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do(nil).Code)
	})

	t.Run("bearer jwt", func(t *testing.T) {
		tok, err := jwt.GenerateToken(secret, 5, "access", time.Hour)
		require.NoError(t, err)
		w := do(map[string]string{"Authorization": "Bearer " + tok})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"uid":5}`, w.Body.String())
	})

	t.Run("bad bearer", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do(map[string]string{"Authorization": "Token abc"}).Code)
		assert.Equal(t, http.StatusUnauthorized, do(map[string]string{"Authorization": "Bearer abc"}).Code)
	})

	t.Run("access token with nonce", func(t *testing.T) {
		h := map[string]string{HeaderAccessToken: "tok", HeaderNonce: "n1", HeaderTime: "1"}
		w := do(h)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"uid":9}`, w.Body.String())

		assert.Equal(t, http.StatusForbidden, do(h).Code)
	})

	t.Run("unknown access token", func(t *testing.T) {
		h := map[string]string{HeaderAccessToken: "other", HeaderNonce: "n2", HeaderTime: "1"}
		assert.Equal(t, http.StatusUnauthorized, do(h).Code)
	})
}
