package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/speak90-backend/internal/config"
	"github.com/pribylovaa/speak90-backend/internal/models"
	"github.com/pribylovaa/speak90-backend/internal/service"
	"github.com/pribylovaa/speak90-backend/internal/transport/http/middleware"
	"github.com/pribylovaa/speak90-backend/mocks"
)

// deleteRequest собирает DELETE-запрос с url-параметром chi и клеймами
// устройства в контексте, как после прохода через AuthBearer.
func deleteRequest(subject string, id uuid.UUID) *http.Request {
	req := httptest.NewRequest(http.MethodDelete, "/v1/audio/uploads/"+id.String(), nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("uploadId", id.String())

	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, middleware.CtxDeviceClaims, &models.DeviceClaims{
		SubjectID: subject,
		DeviceID:  "device-123",
	})

	return req.WithContext(ctx)
}

func TestDeleteRecording_ReturnsUploadIDAndDeletedAt(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStorage(ctrl)
	audio := mocks.NewMockAudioStorage(ctrl)
	h := New(service.New(st, audio, nil, &config.Config{}))

	const subject = "dev_0123456789012345678901234567890123456789"
	id := uuid.New()
	upload := &models.RecordingUpload{
		ID:         id,
		SubjectID:  subject,
		StorageKey: "audio/k",
		Status:     models.UploadStatusUploaded,
	}

	st.EXPECT().UploadByID(gomock.Any(), subject, id).Return(upload, nil)
	st.EXPECT().ClaimForDeletion(gomock.Any(), subject, id, gomock.Any()).Return(true, nil)
	audio.EXPECT().DeleteAudio(gomock.Any(), "audio/k").Return(nil)
	st.EXPECT().MarkDeleted(gomock.Any(), []uuid.UUID{id}).Return(nil)

	rec := httptest.NewRecorder()
	h.DeleteRecording(rec, deleteRequest(subject, id))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		UploadID  string `json:"uploadId"`
		DeletedAt string `json:"deletedAt"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, id.String(), resp.UploadID)
	require.NotEmpty(t, resp.DeletedAt)
}
