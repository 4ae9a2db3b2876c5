package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	log "github.com/sirupsen/logrus"

	"stickyboard.ru/board-api/internal/server/respond"
)

// Recovery перехватывает панику в обработчике и отвечает 500,
// не раскрывая клиенту деталей.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.WithFields(log.Fields{
					"component": "panic_recovery",
					"path":      r.URL.Path,
					"panic":     fmt.Sprintf("%v", rec),
					"stack":     string(debug.Stack()),
				}).Error("ПАНИКА в обработчике — восстановлено")
				respond.Error(w, http.StatusInternalServerError, respond.InternalErrorMessage)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
