package http

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"credit-risk-form/mail"
)

const diagnoseTimeout = 10 * time.Second

// SMTPHandler exposes the mail configuration check and the step-wise
// delivery diagnostics.
type SMTPHandler struct {
	cfg mail.Config
	log *zap.SugaredLogger
}

func NewSMTPHandler(cfg mail.Config, log *zap.SugaredLogger) *SMTPHandler {
	return &SMTPHandler{cfg: cfg, log: log}
}

type smtpCheckResponse struct {
	OK      bool              `json:"ok"`
	Missing []string          `json:"missing,omitempty"`
	Values  map[string]string `json:"values"`
	Warning string            `json:"warning,omitempty"`
}

// Check reports which SMTP settings are present, with masked values.
func (h *SMTPHandler) Check(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	missing := h.cfg.Missing()
	writeJSON(w, http.StatusOK, smtpCheckResponse{
		OK:      len(missing) == 0,
		Missing: missing,
		Values:  h.cfg.Masked(),
		Warning: h.cfg.SenderIdentityWarning(),
	})
}

// Diagnose runs the DNS, socket and auth probes against the configured
// server and reports each step.
func (h *SMTPHandler) Diagnose(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	report := mail.Diagnose(h.cfg, diagnoseTimeout)
	if !report.OK {
		h.log.Warnw("smtp diagnostics failed", "steps", len(report.Steps))
	}
	writeJSON(w, http.StatusOK, report)
}
