package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/ergo/internal/logger"
	"github.com/MKhiriev/ergo/internal/service"
	"github.com/MKhiriev/ergo/internal/store"
	"github.com/MKhiriev/ergo/internal/utils"
	"github.com/MKhiriev/ergo/internal/validators"
	"github.com/MKhiriev/ergo/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:     http.StatusBadRequest,
	utils.ErrEmptyBody: http.StatusBadRequest,

	validators.ErrInvalidData:       http.StatusBadRequest,
	validators.ErrMissingDateFields: http.StatusBadRequest,
	validators.ErrNoFieldsToUpdate:  http.StatusBadRequest,
	validators.ErrInvalidDateRange:  http.StatusBadRequest,

	service.ErrInvalidTags:      http.StatusBadRequest,
	service.ErrWrongCredentials: http.StatusUnauthorized,

	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrTaskNotFound:       http.StatusNotFound,
	store.ErrTagNotFound:        http.StatusNotFound,
	store.ErrCompletionNotFound: http.StatusNotFound,

	store.ErrEmailAlreadyExists:      http.StatusConflict,
	store.ErrTagAlreadyExists:        http.StatusConflict,
	store.ErrTagAlreadyLinked:        http.StatusConflict,
	store.ErrCompletionAlreadyExists: http.StatusConflict,
}

// errorMessageMap holds the client-facing message of every mapped error.
// Details of validation failures are logged, not returned.
var errorMessageMap = map[error]string{
	ErrInvalidJSON:     "Bad Request: Invalid JSON",
	utils.ErrEmptyBody: "Bad Request: Empty body",

	validators.ErrInvalidData:       "Bad Request",
	validators.ErrMissingDateFields: "Bad Request: Missing date field(s)",
	validators.ErrNoFieldsToUpdate:  "Bad Request: Nothing to update",
	validators.ErrInvalidDateRange:  "Bad Request: from must not be after to",

	service.ErrInvalidTags:      "Bad Request: Invalid tag(s)",
	service.ErrWrongCredentials: "invalid email or password",

	store.ErrUserNotFound:       "User Not Found",
	store.ErrTaskNotFound:       "Task Not Found",
	store.ErrTagNotFound:        "Not Found",
	store.ErrCompletionNotFound: "Completion Not Found",

	store.ErrEmailAlreadyExists:      "Email already in use",
	store.ErrTagAlreadyExists:        "Tag name already exists",
	store.ErrTagAlreadyLinked:        "Tag already linked to task",
	store.ErrCompletionAlreadyExists: "Task already completed on this date",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return http.StatusText(http.StatusInternalServerError)
}

// writeError answers with the status and message mapped from err.
// Unmapped errors become 500 and are logged at error level.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error occurred")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request failed")
	}

	utils.WriteJSON(w, models.Message{Message: messageFromError(err)}, status)
}

// decodeJSON reads the body of r into dst, tagging decode failures with
// ErrInvalidJSON.
func decodeJSON(r *http.Request, dst any) error {
	err := utils.ReadJSON(r, dst)
	if err == nil || errors.Is(err, utils.ErrEmptyBody) {
		return err
	}
	return errors.Join(ErrInvalidJSON, err)
}
