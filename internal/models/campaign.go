package models

// PrizeEntry — отдельный приз внутри кампании (вложенный документ).
type PrizeEntry struct {
	ID                 int32
	Date               string
	Prize              string
	Headline           string
	Description        string
	ArticleLink        string
	ImageURLVertical   string
	ImageURLHorizontal string
	Logo               string
	LogoURL            string
	Notes              string
	IsPremium          bool
}

// PrizeCampaign — документ призовой кампании (MongoDB).
// ID — hex ObjectID; наружу конвертируется в string.
// Пара (Year, Type) уникальна; Type ∈ {easter, advent}.
type PrizeCampaign struct {
	ID     string
	Name   string
	Year   string
	Type   string
	Status string
	Prizes []PrizeEntry
}

// Типы кампаний.
const (
	CampaignTypeEaster = "easter"
	CampaignTypeAdvent = "advent"
)
