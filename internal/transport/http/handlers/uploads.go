package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pribylovaa/speak90-backend/internal/models"
	"github.com/pribylovaa/speak90-backend/internal/service"
	"github.com/pribylovaa/speak90-backend/internal/transport/http/httperr"
)

// Память на разбор multipart-формы; сам файл при превышении уходит на диск.
const maxMultipartMemory = 32 << 20

type uploadResponse struct {
	ID         string    `json:"id"`
	FileURI    string    `json:"fileUri"`
	DayNumber  int32     `json:"dayNumber"`
	SectionID  string    `json:"sectionId"`
	DurationMs int64     `json:"durationMs"`
	CreatedAt  time.Time `json:"createdAt"`
	UploadedAt time.Time `json:"uploadedAt"`
	ExpiresAt  time.Time `json:"expiresAt"`
	Status     string    `json:"status"`
}

type listUploadsResponse struct {
	Uploads []uploadResponse `json:"uploads"`
}

type deleteUploadResponse struct {
	UploadID  string    `json:"uploadId"`
	DeletedAt time.Time `json:"deletedAt"`
}

type purgeRequest struct {
	RetentionDays int32 `json:"retentionDays,omitempty"`
}

type purgeResponse struct {
	DeletedCount  int64     `json:"deletedCount"`
	RetentionDays int       `json:"retentionDays"`
	ExecutedAt    time.Time `json:"executedAt"`
}

func uploadFromModel(u *models.RecordingUpload) uploadResponse {
	return uploadResponse{
		ID:         u.ID.String(),
		FileURI:    u.FileURI,
		DayNumber:  u.DayNumber,
		SectionID:  u.SectionID,
		DurationMs: u.DurationMs,
		CreatedAt:  u.CreatedAtClient,
		UploadedAt: u.UploadedAt,
		ExpiresAt:  u.ExpiresAt,
		Status:     string(u.Status),
	}
}

// UploadRecording — POST /v1/audio/uploads (multipart/form-data).
// Поля: file (блоб), dayNumber, sectionId, durationMs, createdAt (RFC3339).
func (h *Handlers) UploadRecording(w http.ResponseWriter, r *http.Request) {
	subject, ok := requireSubject(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}
	defer file.Close()

	dayNumber, err := strconv.ParseInt(r.FormValue("dayNumber"), 10, 32)
	if err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	durationMs, _ := strconv.ParseInt(r.FormValue("durationMs"), 10, 64)

	var createdAt time.Time
	if raw := r.FormValue("createdAt"); raw != "" {
		createdAt, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			httperr.WriteError(w, r, errInvalidArgument())
			return
		}
	}

	in := service.UploadRecordingInput{
		Filename:        header.Filename,
		ContentType:     header.Header.Get("Content-Type"),
		Size:            header.Size,
		Body:            file,
		DayNumber:       int32(dayNumber),
		SectionID:       r.FormValue("sectionId"),
		DurationMs:      durationMs,
		CreatedAtClient: createdAt,
	}

	upload, err := h.Service.UploadRecording(r.Context(), subject, in)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, uploadFromModel(upload))
}

// ListRecordings — GET /v1/audio/uploads.
func (h *Handlers) ListRecordings(w http.ResponseWriter, r *http.Request) {
	subject, ok := requireSubject(w, r)
	if !ok {
		return
	}

	uploads, err := h.Service.ListRecordings(r.Context(), subject)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	out := listUploadsResponse{Uploads: make([]uploadResponse, 0, len(uploads))}
	for i := range uploads {
		out.Uploads = append(out.Uploads, uploadFromModel(&uploads[i]))
	}

	writeJSON(w, http.StatusOK, out)
}

// DeleteRecording — DELETE /v1/audio/uploads/{uploadId}.
func (h *Handlers) DeleteRecording(w http.ResponseWriter, r *http.Request) {
	subject, ok := requireSubject(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "uploadId"))
	if err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	if err := h.Service.DeleteRecording(r.Context(), subject, id); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, deleteUploadResponse{
		UploadID:  id.String(),
		DeletedAt: time.Now().UTC(),
	})
}

// PurgeRecordings — POST /v1/audio/uploads/purge.
// Тело опционально: {retentionDays} переопределяет retention на этот проход.
func (h *Handlers) PurgeRecordings(w http.ResponseWriter, r *http.Request) {
	subject, ok := requireSubject(w, r)
	if !ok {
		return
	}

	var in purgeRequest
	if r.ContentLength > 0 {
		if err := decodeStrict(r, &in); err != nil {
			httperr.WriteError(w, r, errInvalidArgument())
			return
		}
	}

	deleted, days, err := h.Service.PurgeRecordings(r.Context(), subject, in.RetentionDays)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, purgeResponse{
		DeletedCount:  deleted,
		RetentionDays: days,
		ExecutedAt:    time.Now().UTC(),
	})
}
