package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/blueforce/internal/logger"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Validate(ctx context.Context, tokenString string) error
}

// AdminFlag reports whether an admin is currently signed in.
type AdminFlag interface {
	IsAuthenticated(ctx context.Context) (bool, error)
}

// AdminAuthMiddleware guards admin routes. A request needs a valid bearer token
// and the stored admin flag must still be set, so signing out revokes every token.
func AdminAuthMiddleware(tokener Tokener, flag AdminFlag) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if err := tokener.Validate(ctx, tokenString); err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			signedIn, err := flag.IsAuthenticated(ctx)
			if err != nil {
				logger.Log.Errorw("failed to read admin flag", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if !signedIn {
				logger.Log.Infow("authorization failed", "reason", "admin signed out")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
