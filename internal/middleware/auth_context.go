package middleware

import (
	"context"
	"net/http"
	"strings"

	"ask-astro/internal/ports/auth"
)

type claimsCtxKey struct{}

// AuthContext resuelve las claims del request y las deja en el contexto.
// Nunca responde 401: cada handler lo decide con RequireUser.
//   - verifier == nil: modo dev, claims desde X-Debug-User-ID / X-Debug-Email.
//   - verifier != nil: Bearer token; un token inválido equivale a anónimo.
func AuthContext(verifier auth.AuthVerifier) func(http.Handler) http.Handler {
	resolve := debugClaims
	if verifier != nil {
		resolve = func(r *http.Request) (auth.Claims, bool) {
			return bearerClaims(verifier, r)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if c, ok := resolve(r); ok {
				r = r.WithContext(WithClaims(r.Context(), c))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// debugClaims: sin X-Debug-Email el usuario es guest.
func debugClaims(r *http.Request) (auth.Claims, bool) {
	uid := strings.TrimSpace(r.Header.Get("X-Debug-User-ID"))
	if uid == "" {
		return auth.Claims{}, false
	}
	email := strings.TrimSpace(r.Header.Get("X-Debug-Email"))
	return auth.Claims{UserID: uid, Email: email, Guest: email == ""}, true
}

func bearerClaims(verifier auth.AuthVerifier, r *http.Request) (auth.Claims, bool) {
	token := bearerToken(r.Header.Get("Authorization"))
	if token == "" {
		return auth.Claims{}, false
	}
	c, err := verifier.Verify(r.Context(), token)
	if err != nil || strings.TrimSpace(c.UserID) == "" {
		return auth.Claims{}, false
	}
	return c, true
}

func WithClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsCtxKey{}, c)
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	c, ok := ctx.Value(claimsCtxKey{}).(auth.Claims)
	return c, ok
}

// RequireUser devuelve claims con UserID o escribe 401.
func RequireUser(w http.ResponseWriter, r *http.Request) (auth.Claims, bool) {
	claims, ok := GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return auth.Claims{}, false
	}
	return claims, true
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
