package middleware

import (
	"net/http"

	"storefront-be/internal/auth"
	"storefront-be/internal/user"
)

// AuthMiddleware decodes the caller's token, when present, into the request
// context. Requests without a valid token pass through unauthenticated;
// route-level policy decides what they may do.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := auth.ExtractAccessToken(r)
		if tokenStr == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := user.ParseJWT(tokenStr)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := SetUserContext(r.Context(), claims.UserID, claims.Email, claims.Role, claims.Permissions)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
