package middleware

import (
	"net/http"

	"github.com/distripanel/panel-backend/internal/domain/employee"
	"github.com/distripanel/panel-backend/internal/handler/http/response"
	"github.com/distripanel/panel-backend/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// WorkerIDParam answers 404 for {workerID} values that cannot be a worker id.
func WorkerIDParam(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !validator.IsValidUUID(chi.URLParam(r, "workerID")) {
			response.HandleError(w, employee.ErrEmployeeNotFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}
