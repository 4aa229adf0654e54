package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/speak90-backend/internal/models"
	"github.com/pribylovaa/speak90-backend/internal/storage"
)

const testSubject = "dev_0123456789012345678901234567890123456789"

func grantedConsent() *models.AudioCloudConsent {
	return &models.AudioCloudConsent{
		ID:        uuid.New(),
		SubjectID: testSubject,
		Decision:  models.ConsentGranted,
		DecidedAt: time.Now().UTC(),
	}
}

func enabledSettings(retentionDays int32) *models.BackupSettings {
	return &models.BackupSettings{
		SubjectID:     testSubject,
		Enabled:       true,
		RetentionDays: retentionDays,
	}
}

func uploadInput() UploadRecordingInput {
	return UploadRecordingInput{
		Filename:    "day3.m4a",
		ContentType: "audio/x-m4a",
		Size:        1024,
		Body:        bytes.NewReader(make([]byte, 1024)),
		DayNumber:   3,
		SectionID:   "reading",
		DurationMs:  42000,
	}
}

func TestUploadRecording_OK(t *testing.T) {
	t.Parallel()

	svc, st, audio, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	obj := &storage.StoredObject{Key: "audio/" + testSubject + "/123.m4a", URL: "https://cdn/audio.m4a"}

	st.EXPECT().LatestConsent(gomock.Any(), testSubject).Return(grantedConsent(), nil)
	st.EXPECT().BackupSettingsBySubject(gomock.Any(), testSubject).Return(enabledSettings(30), nil)
	audio.EXPECT().PutAudio(gomock.Any(), testSubject, "day3.m4a", "audio/x-m4a", int64(1024), gomock.Any()).
		Return(obj, nil)

	var saved *models.RecordingUpload
	st.EXPECT().SaveUpload(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.RecordingUpload) error {
			saved = u
			return nil
		})

	upload, err := svc.UploadRecording(ctx, testSubject, uploadInput())
	require.NoError(t, err)
	require.NotNil(t, upload)
	require.Equal(t, models.UploadStatusUploaded, upload.Status)
	require.Equal(t, obj.Key, upload.StorageKey)
	require.Equal(t, obj.URL, upload.FileURI)

	// Срок хранения — retention из настроек пользователя.
	require.NotNil(t, saved)
	require.WithinDuration(t, time.Now().UTC().AddDate(0, 0, 30), saved.ExpiresAt, 5*time.Second)
}

func TestUploadRecording_NoConsentHistory(t *testing.T) {
	t.Parallel()

	svc, st, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().LatestConsent(gomock.Any(), testSubject).Return(nil, storage.ErrNotFound)

	_, err := svc.UploadRecording(context.Background(), testSubject, uploadInput())
	require.ErrorIs(t, err, ErrConsentRequired)
}

func TestUploadRecording_ConsentDenied(t *testing.T) {
	t.Parallel()

	svc, st, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	denied := grantedConsent()
	denied.Decision = models.ConsentDenied
	st.EXPECT().LatestConsent(gomock.Any(), testSubject).Return(denied, nil)

	_, err := svc.UploadRecording(context.Background(), testSubject, uploadInput())
	require.ErrorIs(t, err, ErrConsentRequired)
}

func TestUploadRecording_BackupDisabled(t *testing.T) {
	t.Parallel()

	svc, st, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	disabled := enabledSettings(30)
	disabled.Enabled = false

	st.EXPECT().LatestConsent(gomock.Any(), testSubject).Return(grantedConsent(), nil)
	st.EXPECT().BackupSettingsBySubject(gomock.Any(), testSubject).Return(disabled, nil)

	_, err := svc.UploadRecording(context.Background(), testSubject, uploadInput())
	require.ErrorIs(t, err, ErrBackupDisabled)
}

func TestUploadRecording_InvalidAudio(t *testing.T) {
	t.Parallel()

	svc, st, audio, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().LatestConsent(gomock.Any(), testSubject).Return(grantedConsent(), nil)
	st.EXPECT().BackupSettingsBySubject(gomock.Any(), testSubject).Return(enabledSettings(30), nil)
	audio.EXPECT().PutAudio(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, storage.ErrInvalidArgument)

	_, err := svc.UploadRecording(context.Background(), testSubject, uploadInput())
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestUploadRecording_SaveFails_DeletesBlob(t *testing.T) {
	t.Parallel()

	svc, st, audio, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	obj := &storage.StoredObject{Key: "audio/k", URL: "https://cdn/k"}
	dbErr := errors.New("insert failed")

	st.EXPECT().LatestConsent(gomock.Any(), testSubject).Return(grantedConsent(), nil)
	st.EXPECT().BackupSettingsBySubject(gomock.Any(), testSubject).Return(enabledSettings(30), nil)
	audio.EXPECT().PutAudio(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(obj, nil)
	st.EXPECT().SaveUpload(gomock.Any(), gomock.Any()).Return(dbErr)
	// Компенсация: блоб без строки метаданных не должен остаться.
	audio.EXPECT().DeleteAudio(gomock.Any(), "audio/k").Return(nil)

	_, err := svc.UploadRecording(context.Background(), testSubject, uploadInput())
	require.ErrorIs(t, err, dbErr)
}

func TestListRecordings_ReconcilesBeforeRead(t *testing.T) {
	t.Parallel()

	svc, st, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	want := []models.RecordingUpload{{ID: uuid.New(), SubjectID: testSubject}}

	st.EXPECT().ReconcileStuckDeleting(gomock.Any(), testSubject, gomock.Any()).Return(int64(1), nil)
	st.EXPECT().ListUploads(gomock.Any(), testSubject).Return(want, nil)

	got, err := svc.ListRecordings(context.Background(), testSubject)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestListRecordings_ReconcileErrorNotFatal(t *testing.T) {
	t.Parallel()

	svc, st, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().ReconcileStuckDeleting(gomock.Any(), testSubject, gomock.Any()).
		Return(int64(0), errors.New("reconcile failed"))
	st.EXPECT().ListUploads(gomock.Any(), testSubject).Return(nil, nil)

	_, err := svc.ListRecordings(context.Background(), testSubject)
	require.NoError(t, err)
}

func TestDeleteRecording_OK(t *testing.T) {
	t.Parallel()

	svc, st, audio, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	id := uuid.New()
	upload := &models.RecordingUpload{ID: id, SubjectID: testSubject, StorageKey: "audio/k", Status: models.UploadStatusUploaded}

	st.EXPECT().UploadByID(gomock.Any(), testSubject, id).Return(upload, nil)
	st.EXPECT().ClaimForDeletion(gomock.Any(), testSubject, id, gomock.Any()).Return(true, nil)
	audio.EXPECT().DeleteAudio(gomock.Any(), "audio/k").Return(nil)
	st.EXPECT().MarkDeleted(gomock.Any(), []uuid.UUID{id}).Return(nil)

	require.NoError(t, svc.DeleteRecording(context.Background(), testSubject, id))
}

func TestDeleteRecording_NotFound(t *testing.T) {
	t.Parallel()

	svc, st, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	id := uuid.New()
	st.EXPECT().UploadByID(gomock.Any(), testSubject, id).Return(nil, storage.ErrNotFound)

	err := svc.DeleteRecording(context.Background(), testSubject, id)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRecording_LostClaim(t *testing.T) {
	t.Parallel()

	svc, st, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	id := uuid.New()
	upload := &models.RecordingUpload{ID: id, SubjectID: testSubject, StorageKey: "audio/k", Status: models.UploadStatusUploaded}

	st.EXPECT().UploadByID(gomock.Any(), testSubject, id).Return(upload, nil)
	// Между чтением и переходом запись успели удалить конкурентно.
	st.EXPECT().ClaimForDeletion(gomock.Any(), testSubject, id, gomock.Any()).Return(false, nil)

	err := svc.DeleteRecording(context.Background(), testSubject, id)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRecording_BlobDeleteFails_Restores(t *testing.T) {
	t.Parallel()

	svc, st, audio, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	id := uuid.New()
	upload := &models.RecordingUpload{ID: id, SubjectID: testSubject, StorageKey: "audio/k", Status: models.UploadStatusUploaded}
	s3Err := errors.New("s3 unavailable")

	st.EXPECT().UploadByID(gomock.Any(), testSubject, id).Return(upload, nil)
	st.EXPECT().ClaimForDeletion(gomock.Any(), testSubject, id, gomock.Any()).Return(true, nil)
	audio.EXPECT().DeleteAudio(gomock.Any(), "audio/k").Return(s3Err)
	// Компенсация: запись возвращается в uploaded, клиент может повторить.
	st.EXPECT().RestoreUploaded(gomock.Any(), []uuid.UUID{id}).Return(nil)

	err := svc.DeleteRecording(context.Background(), testSubject, id)
	require.ErrorIs(t, err, s3Err)
}

func TestPurgeRecordings_AllOK(t *testing.T) {
	t.Parallel()

	svc, st, audio, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	c1 := models.RecordingUpload{ID: uuid.New(), SubjectID: testSubject, StorageKey: "audio/a"}
	c2 := models.RecordingUpload{ID: uuid.New(), SubjectID: testSubject, StorageKey: "audio/b"}

	st.EXPECT().BackupSettingsBySubject(gomock.Any(), testSubject).Return(enabledSettings(30), nil)
	st.EXPECT().ListPurgeCandidates(gomock.Any(), testSubject, gomock.Any(), gomock.Any()).
		Return([]models.RecordingUpload{c1, c2}, nil)
	st.EXPECT().ClaimForDeletion(gomock.Any(), testSubject, c1.ID, gomock.Any()).Return(true, nil)
	st.EXPECT().ClaimForDeletion(gomock.Any(), testSubject, c2.ID, gomock.Any()).Return(true, nil)
	audio.EXPECT().DeleteAudio(gomock.Any(), "audio/a").Return(nil)
	audio.EXPECT().DeleteAudio(gomock.Any(), "audio/b").Return(nil)
	st.EXPECT().MarkDeleted(gomock.Any(), []uuid.UUID{c1.ID, c2.ID}).Return(nil)

	var run *models.RetentionJobRun
	st.EXPECT().SaveRetentionJob(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.RetentionJobRun) error {
			run = r
			return nil
		})

	deleted, days, err := svc.PurgeRecordings(context.Background(), testSubject, 0)
	require.NoError(t, err)
	require.Equal(t, int64(2), deleted)
	require.Equal(t, 30, days)
	require.NotNil(t, run)
	require.Equal(t, models.RetentionJobTypePurge, run.JobType)
	require.Equal(t, models.RetentionJobSucceeded, run.Status)
	require.Equal(t, int64(2), run.DeletedCount)
}

func TestPurgeRecordings_RetentionOverride(t *testing.T) {
	t.Parallel()

	svc, st, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	// Явный retention в запросе: настройки пользователя не читаются,
	// порог возраста считается от переданного значения.
	st.EXPECT().ListPurgeCandidates(gomock.Any(), testSubject, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, now, olderThan time.Time) ([]models.RecordingUpload, error) {
			require.WithinDuration(t, now.AddDate(0, 0, -7), olderThan, time.Second)
			return nil, nil
		})
	st.EXPECT().SaveRetentionJob(gomock.Any(), gomock.Any()).Return(nil)

	deleted, days, err := svc.PurgeRecordings(context.Background(), testSubject, 7)
	require.NoError(t, err)
	require.Zero(t, deleted)
	require.Equal(t, 7, days)
}

func TestPurgeRecordings_PartialFailure(t *testing.T) {
	t.Parallel()

	svc, st, audio, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ok := models.RecordingUpload{ID: uuid.New(), SubjectID: testSubject, StorageKey: "audio/ok"}
	bad := models.RecordingUpload{ID: uuid.New(), SubjectID: testSubject, StorageKey: "audio/bad"}
	contested := models.RecordingUpload{ID: uuid.New(), SubjectID: testSubject, StorageKey: "audio/contested"}

	st.EXPECT().BackupSettingsBySubject(gomock.Any(), testSubject).Return(enabledSettings(30), nil)
	st.EXPECT().ListPurgeCandidates(gomock.Any(), testSubject, gomock.Any(), gomock.Any()).
		Return([]models.RecordingUpload{ok, bad, contested}, nil)

	st.EXPECT().ClaimForDeletion(gomock.Any(), testSubject, ok.ID, gomock.Any()).Return(true, nil)
	st.EXPECT().ClaimForDeletion(gomock.Any(), testSubject, bad.ID, gomock.Any()).Return(true, nil)
	// Третья запись уже захвачена конкурентным удалением — пропускается.
	st.EXPECT().ClaimForDeletion(gomock.Any(), testSubject, contested.ID, gomock.Any()).Return(false, nil)

	audio.EXPECT().DeleteAudio(gomock.Any(), "audio/ok").Return(nil)
	audio.EXPECT().DeleteAudio(gomock.Any(), "audio/bad").Return(errors.New("s3 timeout"))

	st.EXPECT().MarkDeleted(gomock.Any(), []uuid.UUID{ok.ID}).Return(nil)
	st.EXPECT().RestoreUploaded(gomock.Any(), []uuid.UUID{bad.ID}).Return(nil)

	var run *models.RetentionJobRun
	st.EXPECT().SaveRetentionJob(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.RetentionJobRun) error {
			run = r
			return nil
		})

	// Частичный сбой не валит проход: вызов успешен, неудача видна
	// только в аудите, неудачная запись уйдёт в следующий проход.
	deleted, _, err := svc.PurgeRecordings(context.Background(), testSubject, 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), deleted)
	require.NotNil(t, run)
	require.Equal(t, models.RetentionJobFailed, run.Status)
	require.Equal(t, int64(1), run.DeletedCount)
	require.NotEmpty(t, run.ErrorMessage)
}

func TestPurgeRecordings_SelectionFails_AuditsFailedRun(t *testing.T) {
	t.Parallel()

	svc, st, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	selErr := errors.New("db down")

	st.EXPECT().BackupSettingsBySubject(gomock.Any(), testSubject).Return(enabledSettings(30), nil)
	st.EXPECT().ListPurgeCandidates(gomock.Any(), testSubject, gomock.Any(), gomock.Any()).
		Return(nil, selErr)

	// Неудачный отбор кандидатов тоже оставляет след в аудите.
	var run *models.RetentionJobRun
	st.EXPECT().SaveRetentionJob(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.RetentionJobRun) error {
			run = r
			return nil
		})

	deleted, _, err := svc.PurgeRecordings(context.Background(), testSubject, 0)
	require.ErrorIs(t, err, selErr)
	require.Zero(t, deleted)
	require.NotNil(t, run)
	require.Equal(t, models.RetentionJobTypePurge, run.JobType)
	require.Equal(t, models.RetentionJobFailed, run.Status)
	require.Zero(t, run.DeletedCount)
	require.NotEmpty(t, run.ErrorMessage)
}

func TestReconcileStuckDeletes_OK(t *testing.T) {
	t.Parallel()

	svc, st, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().ReconcileStuckDeleting(gomock.Any(), "", gomock.Any()).Return(int64(3), nil)

	var run *models.RetentionJobRun
	st.EXPECT().SaveRetentionJob(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.RetentionJobRun) error {
			run = r
			return nil
		})

	restored, err := svc.ReconcileStuckDeletes(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(3), restored)
	require.NotNil(t, run)
	require.Equal(t, models.RetentionJobTypeReconcile, run.JobType)
	require.Equal(t, models.RetentionJobSucceeded, run.Status)
}

func TestRetentionDays_Clamped(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	require.Equal(t, 90, svc.retentionDays(&models.BackupSettings{RetentionDays: 0}))
	require.Equal(t, 1, svc.retentionDays(&models.BackupSettings{RetentionDays: -5}))
	require.Equal(t, 3650, svc.retentionDays(&models.BackupSettings{RetentionDays: 100000}))
	require.Equal(t, 30, svc.retentionDays(&models.BackupSettings{RetentionDays: 30}))
}
