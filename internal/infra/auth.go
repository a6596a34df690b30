package infra

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/abababa124444-cmd/arab-chat1/internal/api"
	"github.com/abababa124444-cmd/arab-chat1/internal/config"
	"github.com/abababa124444-cmd/arab-chat1/internal/model"
)

// AuthInterceptorHTTP puts the caller identity into the request context when a token is
// presented. Requests without a token pass through anonymously; a bad token is rejected.
func AuthInterceptorHTTP(next http.Handler, validator TokenValidator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := tokenFromRequest(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := validator.ValidateIdentityToken(token)
		if err != nil {
			zerolog.Ctx(r.Context()).Warn().Err(err).Str("func", "AuthInterceptorHTTP").Msg("rejected identity token")
			writeUnauthorized(w, "invalid token")
			return
		}

		ctx := WithIdentity(r.Context(), claims.User())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireIdentity rejects anonymous requests.
func RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := IdentityFromContext(r.Context()); !ok {
			writeUnauthorized(w, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func WithIdentity(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, config.KeyIdentity, user)
}

func IdentityFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(config.KeyIdentity).(model.User)
	return user, ok
}

// tokenFromRequest reads a bearer token, falling back to the token query parameter
// that browsers use when opening a websocket.
func tokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	return r.URL.Query().Get("token")
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: message})
}
