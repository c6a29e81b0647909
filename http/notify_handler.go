package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"credit-risk-form/service"
)

type NotifyHandler struct {
	service *service.NotifyService
	log     *zap.SugaredLogger
}

func NewNotifyHandler(service *service.NotifyService, log *zap.SugaredLogger) *NotifyHandler {
	return &NotifyHandler{service: service, log: log}
}

type notifyRequest struct {
	Email string `json:"email"`
}

// SendConfirmation mails the session's latest assessment. High-band
// sessions are refused, and a session without an assessment cannot
// request mail at all.
func (h *NotifyHandler) SendConfirmation(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req notifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := r.Cookie(sessionCookie)
	if err != nil || c.Value == "" {
		writeError(w, http.StatusConflict, service.ErrNoAssessment.Error())
		return
	}

	ref, err := h.service.SendConfirmation(c.Value, req.Email)
	switch {
	case errors.Is(err, service.ErrNoAssessment):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrEmptyEmail):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrHighRisk):
		writeError(w, http.StatusForbidden, err.Error())
	case err != nil:
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"error":        err.Error(),
			"reference_id": ref,
		})
	default:
		writeJSON(w, http.StatusOK, map[string]string{
			"status":       "sent",
			"reference_id": ref,
		})
	}
}
