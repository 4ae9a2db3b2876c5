package middleware

import (
	"net/http"

	"stickyboard.ru/board-api/internal/common"
	"stickyboard.ru/board-api/internal/server/respond"
)

// PasswordVerifier проверяет пароль администратора.
// Реализуется сервисом admin.
type PasswordVerifier interface {
	VerifyPassword(password string) bool
}

// AdminAuth пускает дальше только запросы с верным паролем
// в заголовке X-Admin-Password.
func AdminAuth(verifier PasswordVerifier, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		password := r.Header.Get("X-Admin-Password")
		if password == "" || !verifier.VerifyPassword(password) {
			respond.Error(w, http.StatusUnauthorized, common.ErrNotAdmin.Error())
			return
		}
		next.ServeHTTP(w, r)
	})
}
