package docstore

import "errors"

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("docstore: document not found")

// CrossRef durably links a product to its vector-store entry and the
// campaign identifier minted when the product was indexed.
type CrossRef struct {
	ProductID  string `json:"product_id"`
	VectorID   string `json:"vector_id"`
	CampaignID string `json:"campaign_id"`
}

// DayCaption is one day's generated caption and hashtag line.
type DayCaption struct {
	Day      string `json:"day"`
	Caption  string `json:"caption"`
	Hashtags string `json:"hashtags"`
}

// CampaignContent holds the full generated caption sequence for a campaign.
// Each write replaces the prior document wholesale.
type CampaignContent struct {
	CampaignID string       `json:"campaign_id"`
	ClientID   string       `json:"client_id"`
	ProductID  string       `json:"product_id"`
	Days       []DayCaption `json:"campaign_day"`
}
