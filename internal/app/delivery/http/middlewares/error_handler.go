package middlewares

import (
	"fmt"
	"net/http"
	"pandacare-gateway/internal/pkg/exceptions"
	"pandacare-gateway/internal/pkg/utils"

	"go.uber.org/zap"
)

func (m *Middlewares) RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				m.Log.Error("panic recovered",
					zap.Any("panic", recovered),
					zap.Stack("stacktrace"),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerProcess(fmt.Errorf("panic: %v", recovered)))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
