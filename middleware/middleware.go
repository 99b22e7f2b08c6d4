package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Jigar-Gadhia/engineering-resource-dashboard/logging"
	"github.com/Jigar-Gadhia/engineering-resource-dashboard/models"
	"github.com/Jigar-Gadhia/engineering-resource-dashboard/utils"
)

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// JWTAuthMiddleware validates the bearer token and forwards the subject id
// and role to the handler through the User-ID and Role headers. A missing
// header is 401; a present but invalid or expired token is 403. When
// allowedRoles is non-empty the token's role must be one of them.
func JWTAuthMiddleware(next http.Handler, allowedRoles ...models.Role) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			logging.Logger.Warnf("Event ID: JWT_AUTH_MISSING_HEADER, Description: Authorization header missing for request to %s %s", r.Method, r.URL.Path)
			writeAuthError(w, http.StatusUnauthorized, "missing authorization header")
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenStr)
		if err != nil {
			logging.Logger.Warnf("Event ID: JWT_AUTH_INVALID_TOKEN, Description: Invalid token provided for request to %s %s: %v", r.Method, r.URL.Path, err)
			writeAuthError(w, http.StatusForbidden, "invalid token")
			return
		}

		if !claims.Role.Valid() {
			writeAuthError(w, http.StatusForbidden, "invalid token")
			return
		}

		if len(allowedRoles) > 0 && !roleAllowed(claims.Role, allowedRoles) {
			logging.Logger.Warnf("Event ID: JWT_AUTH_ROLE_FORBIDDEN, Description: Role %s not allowed for request to %s %s", claims.Role, r.Method, r.URL.Path)
			writeAuthError(w, http.StatusForbidden, "access forbidden: user does not have the required role")
			return
		}

		// Strip any client-supplied copies before trusting these downstream.
		r.Header.Set("User-ID", claims.UserID)
		r.Header.Set("Role", string(claims.Role))
		next.ServeHTTP(w, r)
	})
}

func roleAllowed(role models.Role, allowedRoles []models.Role) bool {
	for _, allowed := range allowedRoles {
		if role == allowed {
			return true
		}
	}
	return false
}
