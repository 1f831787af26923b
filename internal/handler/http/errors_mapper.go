package http

import (
	"errors"
	"net/http"

	"github.com/akarpov/go-music-library/internal/service"
	"github.com/akarpov/go-music-library/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrWrongPassword:       http.StatusUnauthorized,
	service.ErrUnknownAccount:      http.StatusNotFound,
	service.ErrAccountNotVerified:  http.StatusForbidden,
	service.ErrNoCodeIssued:        http.StatusBadRequest,
	service.ErrCodeExpired:         http.StatusBadRequest,
	service.ErrCodeMismatch:        http.StatusBadRequest,
	service.ErrTokenIsExpired:      http.StatusUnauthorized,
	service.ErrTokenMalformed:      http.StatusUnauthorized,
	service.ErrQueryTooShort:       http.StatusBadRequest,
	service.ErrInvalidRating:       http.StatusBadRequest,
	service.ErrUnknownBand:         http.StatusBadRequest,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoAccountFound:     http.StatusNotFound,
	store.ErrNoAdminFound:       http.StatusNotFound,
	store.ErrNoSongFound:        http.StatusNotFound,
	store.ErrAlreadyLiked:       http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// httpError writes the mapped status for err. Internal failures keep
// their details out of the response body.
func httpError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}
