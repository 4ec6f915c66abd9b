package router

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	libJWT "github.com/golang-jwt/jwt/v5"
	"github.com/inkpress/inkpress/internal/pkg/jwt"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mw("outer"), mw("inner"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestDecodeBody(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	req := &Request{Request: httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"name":"alice"}`))}

	var p payload
	require.NoError(t, req.DecodeBody(&p))
	assert.Equal(t, "alice", p.Name)
}

func TestDecodeBody_Rejects(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := map[string]string{
		"unknown field":    `{"name":"alice","extra":true}`,
		"trailing content": `{"name":"alice"}{"name":"bob"}`,
		"not json":         `name=alice`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			req := &Request{Request: httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))}
			var p payload
			assert.Error(t, req.DecodeBody(&p))
		})
	}
}

func TestGetParamInt64(t *testing.T) {
	base := httptest.NewRequest(http.MethodGet, "/comments/42", nil)
	ctx := context.WithValue(base.Context(), httprouter.ParamsKey, httprouter.Params{{Key: "id", Value: "42"}})
	req := &Request{Request: base.WithContext(ctx)}

	id, err := req.GetParamInt64("id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	ctx = context.WithValue(base.Context(), httprouter.ParamsKey, httprouter.Params{{Key: "id", Value: "nope"}})
	req = &Request{Request: base.WithContext(ctx)}
	_, err = req.GetParamInt64("id")
	assert.Error(t, err)
}

type staticVerifier struct {
	claims jwt.Claims
	err    error
}

func (s staticVerifier) Generate(int64, string, string) (string, error) { return "", nil }

func (s staticVerifier) Verify(string) (jwt.Claims, error) { return s.claims, s.err }

type staticRevoker struct{ revoked bool }

func (s staticRevoker) IsRevoked(context.Context, string) bool { return s.revoked }

func TestMiddlewareAuthentication(t *testing.T) {
	claims := jwt.Claims{
		RegisteredClaims: libJWT.RegisteredClaims{ID: "token-id-1"},
		UserID:           42,
		Username:         "alice",
		Role:             "user",
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clm := jwt.GetAuth(r.Context())
		require.NotNil(t, clm)
		assert.Equal(t, int64(42), clm.UserID)
		w.WriteHeader(http.StatusNoContent)
	})

	h := middlewareAuthentication(staticVerifier{claims: claims}, staticRevoker{}, nil)(next)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/identity/logout", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMiddlewareAuthentication_MissingHeader(t *testing.T) {
	h := middlewareAuthentication(staticVerifier{}, staticRevoker{}, nil)(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			t.Fatal("handler must not run without credentials")
		}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/identity/logout", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareAuthentication_RevokedToken(t *testing.T) {
	claims := jwt.Claims{RegisteredClaims: libJWT.RegisteredClaims{ID: "token-id-1"}}

	h := middlewareAuthentication(staticVerifier{claims: claims}, staticRevoker{revoked: true}, nil)(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			t.Fatal("handler must not run for a revoked token")
		}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/identity/logout", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareAuthentication_PublicEndpoint(t *testing.T) {
	public := map[string]map[string]struct{}{
		http.MethodGet: {"/api/v1/blog/posts": {}},
	}

	called := false
	h := middlewareAuthentication(staticVerifier{}, staticRevoker{}, public)(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			called = true
			w.WriteHeader(http.StatusOK)
		}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/blog/posts", nil))
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}
