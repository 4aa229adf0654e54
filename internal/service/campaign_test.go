package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/speak90-backend/internal/models"
	"github.com/pribylovaa/speak90-backend/internal/storage"
)

func testCampaign() models.PrizeCampaign {
	return models.PrizeCampaign{
		Name:   "Advent 2026",
		Year:   "2026",
		Type:   models.CampaignTypeAdvent,
		Status: "draft",
		Prizes: []models.PrizeEntry{{ID: 1, Date: "2026-12-01", Prize: "Headphones"}},
	}
}

func TestCreateCampaign_OK(t *testing.T) {
	t.Parallel()

	svc, _, _, camp, ctrl := newSvc(t)
	defer ctrl.Finish()

	in := testCampaign()
	created := in
	created.ID = "65f0c0ffee0000000000aa01"

	camp.EXPECT().CreateCampaign(gomock.Any(), gomock.Any()).Return(&created, nil)

	got, err := svc.CreateCampaign(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
}

func TestCreateCampaign_Duplicate(t *testing.T) {
	t.Parallel()

	svc, _, _, camp, ctrl := newSvc(t)
	defer ctrl.Finish()

	camp.EXPECT().CreateCampaign(gomock.Any(), gomock.Any()).Return(nil, storage.ErrAlreadyExists)

	_, err := svc.CreateCampaign(context.Background(), testCampaign())
	require.ErrorIs(t, err, ErrAlreadyExists)
}

func TestCreateCampaign_InvalidType(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	in := testCampaign()
	in.Type = "halloween"

	_, err := svc.CreateCampaign(context.Background(), in)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCampaignByID_NotFound(t *testing.T) {
	t.Parallel()

	svc, _, _, camp, ctrl := newSvc(t)
	defer ctrl.Finish()

	camp.EXPECT().CampaignByID(gomock.Any(), "missing").Return(nil, storage.ErrNotFound)

	_, err := svc.CampaignByID(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCampaignByYearAndType_OK(t *testing.T) {
	t.Parallel()

	svc, _, _, camp, ctrl := newSvc(t)
	defer ctrl.Finish()

	want := testCampaign()
	want.ID = "65f0c0ffee0000000000aa02"
	camp.EXPECT().CampaignByYearAndType(gomock.Any(), "2026", models.CampaignTypeAdvent).Return(&want, nil)

	got, err := svc.CampaignByYearAndType(context.Background(), "2026", models.CampaignTypeAdvent)
	require.NoError(t, err)
	require.Equal(t, want.ID, got.ID)
}

func TestUpdateCampaign_PartialUpdate(t *testing.T) {
	t.Parallel()

	svc, _, _, camp, ctrl := newSvc(t)
	defer ctrl.Finish()

	status := "active"
	updated := testCampaign()
	updated.ID = "65f0c0ffee0000000000aa03"
	updated.Status = status

	camp.EXPECT().UpdateCampaignByID(gomock.Any(), updated.ID, storage.CampaignUpdate{Status: &status}).
		Return(&updated, nil)

	got, err := svc.UpdateCampaign(context.Background(), updated.ID, storage.CampaignUpdate{Status: &status})
	require.NoError(t, err)
	require.Equal(t, "active", got.Status)
}

func TestDeleteCampaign_NotFound(t *testing.T) {
	t.Parallel()

	svc, _, _, camp, ctrl := newSvc(t)
	defer ctrl.Finish()

	camp.EXPECT().DeleteCampaignByID(gomock.Any(), "missing").Return(storage.ErrNotFound)

	err := svc.DeleteCampaign(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}
