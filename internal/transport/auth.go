package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/seojinp/projectboard/internal/domain/access"
	"github.com/seojinp/projectboard/internal/store"
)

// ErrUnauthorized indicates invalid or missing credentials.
var ErrUnauthorized = errors.New("unauthorized")

type viewerKey struct{}

// ViewerFromContext returns the resolved viewer from context, if present.
func ViewerFromContext(ctx context.Context) (access.Viewer, bool) {
	v, ok := ctx.Value(viewerKey{}).(access.Viewer)
	return v, ok
}

// ViewerResolver turns a bearer token into a session viewer. The role
// lookup happens here, once per resolve; downstream code only ever sees
// the finished capability value.
type ViewerResolver struct {
	secret []byte
	users  store.UserRepository
}

// NewViewerResolver creates a resolver over the given signing secret.
func NewViewerResolver(secret []byte, users store.UserRepository) *ViewerResolver {
	return &ViewerResolver{secret: secret, users: users}
}

// Resolve validates the token and loads the account it names.
func (r *ViewerResolver) Resolve(ctx context.Context, token string) (access.Viewer, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return r.secret, nil
	})
	if err != nil {
		return access.Viewer{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return access.Viewer{}, ErrUnauthorized
	}

	userID, _ := claims["sub"].(string)
	if userID == "" {
		return access.Viewer{}, ErrUnauthorized
	}

	user, err := r.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return access.Viewer{}, ErrUnauthorized
		}
		return access.Viewer{}, fmt.Errorf("resolving viewer: %w", err)
	}

	return user.Viewer(), nil
}

// AuthMiddleware enforces bearer token authentication and installs the
// viewer into the request context.
func AuthMiddleware(resolver *ViewerResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			if token == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			viewer, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				http.Error(w, "invalid bearer token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), viewerKey{}, viewer)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
