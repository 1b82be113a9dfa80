package auth

import (
	"net/http"
	"strings"

	"github.com/user/aquarealty/apperror"
)

// TokenVerifier is the subset of TokenIssuer the middleware needs.
type TokenVerifier interface {
	Verify(token string) (*Claims, error)
}

// BearerMiddleware rejects requests without a valid token and stores the
// verified claims in the request context for downstream handlers.
//
// The Authorization header may carry either "Bearer <token>" or the bare
// token, which is the form the login endpoint hands out.
func BearerMiddleware(verifier TokenVerifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := tokenFromHeader(r.Header.Get("Authorization"))
			if !ok {
				apperror.WriteError(w, r, apperror.NewAuthError("Authorization header is missing", nil))
				return
			}

			claims, err := verifier.Verify(tokenString)
			if err != nil {
				apperror.WriteError(w, r, apperror.NewAuthError("invalid token", err))
				return
			}

			next.ServeHTTP(w, r.WithContext(NewContextWithClaims(r.Context(), claims)))
		})
	}
}

func tokenFromHeader(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", false
	}
	scheme, rest, found := strings.Cut(header, " ")
	if found {
		if !strings.EqualFold(scheme, "bearer") {
			return "", false
		}
		header = strings.TrimSpace(rest)
	}
	return header, header != ""
}
