package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/SergeyKozhin/user-profiles-backend/internal/business/profiles"
	"github.com/SergeyKozhin/user-profiles-backend/internal/model"
)

func (a *Api) logError(_ *http.Request, err error) {
	a.logger.Errorw("server error", "error", err)
}

func (a *Api) errorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	data := map[string]interface{}{"error": message}

	if err := a.writeJSON(w, status, data, nil); err != nil {
		a.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (a *Api) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	a.logError(r, err)

	message := "the server encountered a problem and could not process your request"
	a.errorResponse(w, r, http.StatusInternalServerError, message)
}

func (a *Api) clientErrorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	a.logger.Debugw("client error", "err", message)
	a.errorResponse(w, r, status, message)
}

func (a *Api) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "the requested resource could not be found"
	a.clientErrorResponse(w, r, http.StatusNotFound, message)
}

func (a *Api) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	message := fmt.Sprintf("the %s method is not supported for this resource", r.Method)
	a.clientErrorResponse(w, r, http.StatusMethodNotAllowed, message)
}

func (a *Api) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	a.clientErrorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (a *Api) failedValidationResponse(w http.ResponseWriter, r *http.Request, errors map[string]string) {
	a.clientErrorResponse(w, r, http.StatusUnprocessableEntity, errors)
}

func (a *Api) forbiddenResponse(w http.ResponseWriter, r *http.Request, message string) {
	a.clientErrorResponse(w, r, http.StatusForbidden, message)
}

// loadFailedResponse renders the blocking error state together with the retry action.
func (a *Api) loadFailedResponse(w http.ResponseWriter, r *http.Request, loadErr *profiles.LoadError) {
	a.logger.Debugw("users not available", "err", loadErr.Err)

	data := map[string]interface{}{"error": loadErr.Message}
	if session, ok := r.Context().Value(contextKeySession).(*profiles.Session); ok {
		data["retry"] = fmt.Sprintf("/variants/%s/reload", session.Variant().Name)
	}

	if err := a.writeJSON(w, http.StatusServiceUnavailable, data, nil); err != nil {
		a.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (a *Api) loadingResponse(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Retry-After", "1")
	a.clientErrorResponse(w, r, http.StatusServiceUnavailable, "users are loading")
}

// sessionErrorResponse maps errors returned by a profiles session to responses.
func (a *Api) sessionErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var loadErr *profiles.LoadError

	switch {
	case errors.As(err, &loadErr):
		a.loadFailedResponse(w, r, loadErr)
	case errors.Is(err, model.ErrNotLoaded):
		a.loadingResponse(w, r)
	case errors.Is(err, model.ErrNoRecord):
		a.notFoundResponse(w, r)
	case errors.Is(err, model.ErrFeatureDisabled):
		a.forbiddenResponse(w, r, err.Error())
	default:
		a.serverErrorResponse(w, r, err)
	}
}
