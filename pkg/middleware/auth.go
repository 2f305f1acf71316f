package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/sales-tracker-api/pkg/log"
)

type contextKey string

const (
	ContextKeyUser    contextKey = "user"
	ContextKeySession contextKey = "session"
)

// AuthMiddleware valida o token Bearer e injeta claims e sessão no contexto.
// É aplicado por rota, apenas nas rotas protegidas.
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Header Authorization é obrigatório", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader || tokenString == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token Bearer é obrigatório", nil)
				return
			}

			claims, session, err := authService.ValidateToken(r.Context(), tokenString)
			if err != nil {
				var authErr *authenticating.AuthError
				if errors.As(err, &authErr) {
					log.ForContext(r.Context()).WithError(err).Warn("auth: token recusado")
					apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
					return
				}

				log.ForContext(r.Context()).WithError(err).Error("auth: erro ao validar token")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao validar token", nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), claims, session)))
		})
	}
}

// RequireSession bloqueia a rota quando o contexto não carrega uma sessão válida
func RequireSession() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if SessionFromContext(r.Context()) == nil {
				log.ForContext(r.Context()).Warn("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrSessionNotFound, "Usuário não autenticado", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func SessionFromContext(ctx context.Context) *domain.Session {
	session, _ := ctx.Value(ContextKeySession).(*domain.Session)
	return session
}

func ClaimsFromContext(ctx context.Context) *domain.Claims {
	claims, _ := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims
}

// WithSession injeta claims e sessão no contexto, como feito pelo AuthMiddleware
func WithSession(ctx context.Context, claims *domain.Claims, session *domain.Session) context.Context {
	ctx = context.WithValue(ctx, ContextKeyUser, claims)
	return context.WithValue(ctx, ContextKeySession, session)
}
