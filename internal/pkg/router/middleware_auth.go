package router

import (
	"context"
	"net/http"
	"strings"

	"github.com/inkpress/inkpress/internal/pkg/jwt"
)

// TokenRevoker reports whether a token ID was revoked before its expiry, e.g.
// by logout. A nil Revoker means no token is ever considered revoked.
type TokenRevoker interface {
	IsRevoked(ctx context.Context, tokenID string) bool
}

func middlewareAuthentication(verifier jwt.JWT, revoker TokenRevoker, publicEndpoints map[string]map[string]struct{}) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := matchedRoutePath(r)

			if s, ok := publicEndpoints[r.Method]; ok {
				if _, skip := s[path]; skip {
					next.ServeHTTP(w, r)
					return
				}
			}

			p := strings.Fields(r.Header.Get("Authorization"))
			if len(p) != 2 || !strings.EqualFold(p[0], "Bearer") {
				writeJSON(w, map[string]string{"message": "Authentication required"}, http.StatusUnauthorized)
				return
			}

			claims, err := verifier.Verify(p[1])
			if err != nil {
				writeJSON(w, map[string]string{"message": "Invalid or expired token"}, http.StatusUnauthorized)
				return
			}

			if revoker != nil && revoker.IsRevoked(r.Context(), claims.ID) {
				writeJSON(w, map[string]string{"message": "Invalid or expired token"}, http.StatusUnauthorized)
				return
			}

			ctx := jwt.SetAuth(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
