package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/speak90-backend/internal/models"
	"github.com/pribylovaa/speak90-backend/internal/storage"
	"github.com/pribylovaa/speak90-backend/internal/transport/http/httperr"
)

type prizeEntryPayload struct {
	ID                 int32  `json:"id"`
	Date               string `json:"date"`
	Prize              string `json:"prize"`
	Headline           string `json:"headline,omitempty"`
	Description        string `json:"description,omitempty"`
	ArticleLink        string `json:"articleLink,omitempty"`
	ImageURLVertical   string `json:"imageUrlVertical,omitempty"`
	ImageURLHorizontal string `json:"imageUrlHorizontal,omitempty"`
	Logo               string `json:"logo,omitempty"`
	LogoURL            string `json:"logoUrl,omitempty"`
	Notes              string `json:"notes,omitempty"`
	IsPremium          bool   `json:"isPremium"`
}

type campaignPayload struct {
	ID     string              `json:"id,omitempty"`
	Name   string              `json:"name"`
	Year   string              `json:"year"`
	Type   string              `json:"type"`
	Status string              `json:"status"`
	Prizes []prizeEntryPayload `json:"prizes"`
}

type campaignPatchRequest struct {
	Name   *string              `json:"name,omitempty"`
	Status *string              `json:"status,omitempty"`
	Prizes *[]prizeEntryPayload `json:"prizes,omitempty"`
}

type listCampaignsResponse struct {
	Campaigns []campaignPayload `json:"campaigns"`
}

func campaignFromModel(c *models.PrizeCampaign) campaignPayload {
	out := campaignPayload{
		ID:     c.ID,
		Name:   c.Name,
		Year:   c.Year,
		Type:   c.Type,
		Status: c.Status,
		Prizes: make([]prizeEntryPayload, 0, len(c.Prizes)),
	}

	for _, p := range c.Prizes {
		out.Prizes = append(out.Prizes, prizeEntryPayload(p))
	}

	return out
}

func (p campaignPayload) toModel() models.PrizeCampaign {
	out := models.PrizeCampaign{
		Name:   p.Name,
		Year:   p.Year,
		Type:   p.Type,
		Status: p.Status,
		Prizes: make([]models.PrizeEntry, 0, len(p.Prizes)),
	}

	for _, prize := range p.Prizes {
		out.Prizes = append(out.Prizes, models.PrizeEntry(prize))
	}

	return out
}

// ListCampaigns — GET /v1/prize-campaigns.
// Параметры ?year=&type= сужают выборку до одной кампании.
func (h *Handlers) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	year := r.URL.Query().Get("year")
	campaignType := r.URL.Query().Get("type")

	if year != "" && campaignType != "" {
		campaign, err := h.Service.CampaignByYearAndType(r.Context(), year, campaignType)
		if err != nil {
			httperr.WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, listCampaignsResponse{
			Campaigns: []campaignPayload{campaignFromModel(campaign)},
		})
		return
	}

	campaigns, err := h.Service.ListCampaigns(r.Context())
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	out := listCampaignsResponse{Campaigns: make([]campaignPayload, 0, len(campaigns))}
	for i := range campaigns {
		out.Campaigns = append(out.Campaigns, campaignFromModel(&campaigns[i]))
	}

	writeJSON(w, http.StatusOK, out)
}

// GetCampaign — GET /v1/prize-campaigns/{id}.
func (h *Handlers) GetCampaign(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.Service.CampaignByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, campaignFromModel(campaign))
}

// CreateCampaign — POST /v1/prize-campaigns.
func (h *Handlers) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var in campaignPayload
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	created, err := h.Service.CreateCampaign(r.Context(), in.toModel())
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, campaignFromModel(created))
}

// UpdateCampaign — PATCH /v1/prize-campaigns/{id}. Частичное обновление:
// меняются только переданные поля.
func (h *Handlers) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var in campaignPatchRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	update := storage.CampaignUpdate{
		Name:   in.Name,
		Status: in.Status,
	}

	if in.Prizes != nil {
		prizes := make([]models.PrizeEntry, 0, len(*in.Prizes))
		for _, p := range *in.Prizes {
			prizes = append(prizes, models.PrizeEntry(p))
		}
		update.Prizes = &prizes
	}

	updated, err := h.Service.UpdateCampaign(r.Context(), chi.URLParam(r, "id"), update)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, campaignFromModel(updated))
}

// ReplaceCampaign — PUT /v1/prize-campaigns/{id}. Полная замена мутируемых полей.
func (h *Handlers) ReplaceCampaign(w http.ResponseWriter, r *http.Request) {
	var in campaignPayload
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	prizes := make([]models.PrizeEntry, 0, len(in.Prizes))
	for _, p := range in.Prizes {
		prizes = append(prizes, models.PrizeEntry(p))
	}

	update := storage.CampaignUpdate{
		Name:   &in.Name,
		Status: &in.Status,
		Prizes: &prizes,
	}

	updated, err := h.Service.UpdateCampaign(r.Context(), chi.URLParam(r, "id"), update)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, campaignFromModel(updated))
}

// DeleteCampaign — DELETE /v1/prize-campaigns/{id}.
func (h *Handlers) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteCampaign(r.Context(), chi.URLParam(r, "id")); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
