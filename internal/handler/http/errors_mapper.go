package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/service"
	"github.com/MKhiriev/go-recipe-book/internal/store"
	"github.com/MKhiriev/go-recipe-book/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrValidation:              http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrRecipeNotFound: http.StatusNotFound,
	store.ErrUserNotFound:   http.StatusNotFound,
}

// errorMessages overrides the message sent for errors whose text is not
// meant for the client.
var errorMessages = map[error]string{
	service.ErrWrongPassword:           "Invalid credentials",
	service.ErrTokenIsExpiredOrInvalid: "Invalid/Expired Token!",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error, status int) string {
	for target, msg := range errorMessages {
		if errors.Is(err, target) {
			return msg
		}
	}
	if status == http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}

// writeServiceError logs err and answers with the status and message it maps to.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, messageFromError(err, status), status)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, "Route "+r.URL.Path+" not found", http.StatusNotFound)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, "Method "+r.Method+" not allowed on "+r.URL.Path, http.StatusMethodNotAllowed)
}
