package handlers

import (
	"net/http"
	"time"

	"github.com/pribylovaa/speak90-backend/internal/models"
	"github.com/pribylovaa/speak90-backend/internal/transport/http/httperr"
)

type consentRequest struct {
	Decision      string `json:"decision"`
	PolicyVersion string `json:"policyVersion,omitempty"`
}

type consentResponse struct {
	Decision      string    `json:"decision"`
	DecidedAt     time.Time `json:"decidedAt"`
	PolicyVersion string    `json:"policyVersion,omitempty"`
}

type backupSettingsPayload struct {
	Enabled       bool  `json:"enabled"`
	RetentionDays int32 `json:"retentionDays"`
}

func consentFromModel(c *models.AudioCloudConsent) consentResponse {
	return consentResponse{
		Decision:      c.Decision,
		DecidedAt:     c.DecidedAt,
		PolicyVersion: c.PolicyVersion,
	}
}

// RecordConsent — POST /v1/consents/audio-cloud.
func (h *Handlers) RecordConsent(w http.ResponseWriter, r *http.Request) {
	subject, ok := requireSubject(w, r)
	if !ok {
		return
	}

	var in consentRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	consent, err := h.Service.RecordConsent(r.Context(), subject, in.Decision, in.PolicyVersion)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, consentFromModel(consent))
}

// GetConsent — GET /v1/consents/audio-cloud. Возвращает последнее решение.
func (h *Handlers) GetConsent(w http.ResponseWriter, r *http.Request) {
	subject, ok := requireSubject(w, r)
	if !ok {
		return
	}

	consent, err := h.Service.LatestConsent(r.Context(), subject)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, consentFromModel(consent))
}

// GetBackupSettings — GET /v1/user/settings/backup.
func (h *Handlers) GetBackupSettings(w http.ResponseWriter, r *http.Request) {
	subject, ok := requireSubject(w, r)
	if !ok {
		return
	}

	settings, err := h.Service.BackupSettings(r.Context(), subject)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, backupSettingsPayload{
		Enabled:       settings.Enabled,
		RetentionDays: settings.RetentionDays,
	})
}

// PutBackupSettings — PUT /v1/user/settings/backup.
func (h *Handlers) PutBackupSettings(w http.ResponseWriter, r *http.Request) {
	subject, ok := requireSubject(w, r)
	if !ok {
		return
	}

	var in backupSettingsPayload
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	settings, err := h.Service.SaveBackupSettings(r.Context(), subject, in.Enabled, in.RetentionDays)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, backupSettingsPayload{
		Enabled:       settings.Enabled,
		RetentionDays: settings.RetentionDays,
	})
}
