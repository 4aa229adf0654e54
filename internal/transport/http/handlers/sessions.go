package handlers

import (
	"net/http"
	"time"

	"github.com/pribylovaa/speak90-backend/internal/models"
	"github.com/pribylovaa/speak90-backend/internal/transport/http/httperr"
)

type issueSessionRequest struct {
	DeviceID   string `json:"deviceId"`
	Platform   string `json:"platform"`
	AppVersion string `json:"appVersion"`
}

type refreshSessionRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type sessionResponse struct {
	AccessToken     string    `json:"accessToken"`
	RefreshToken    string    `json:"refreshToken"`
	AccessExpiresAt time.Time `json:"accessExpiresAt"`
	SubjectID       string    `json:"subjectId"`
}

func sessionFromPair(pair *models.TokenPair) sessionResponse {
	return sessionResponse{
		AccessToken:     pair.AccessToken,
		RefreshToken:    pair.RefreshToken,
		AccessExpiresAt: pair.AccessExpiresAt,
		SubjectID:       pair.SubjectID,
	}
}

// IssueSession — POST /v1/auth/device-sessions.
func (h *Handlers) IssueSession(w http.ResponseWriter, r *http.Request) {
	var in issueSessionRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	pair, err := h.Service.IssueSession(r.Context(), in.DeviceID, in.Platform, in.AppVersion)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, sessionFromPair(pair))
}

// RefreshSession — POST /v1/auth/device-sessions/refresh.
func (h *Handlers) RefreshSession(w http.ResponseWriter, r *http.Request) {
	var in refreshSessionRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	pair, err := h.Service.RefreshSession(r.Context(), in.RefreshToken)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionFromPair(pair))
}
