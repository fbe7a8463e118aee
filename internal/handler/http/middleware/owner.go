package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/salonhq/salon-backend-go/internal/domain/auth"
	"github.com/salonhq/salon-backend-go/internal/handler/http/response"
)

// OwnerOnly gates management endpoints to the business owner or an admin.
func OwnerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || (auth.Role(role) != auth.RoleOwner && auth.Role(role) != auth.RoleAdmin) {
			response.HandleError(w, auth.ErrOwnerPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
