package storage

import "time"

// CampaignRecord is the authoritative row holding campaign parameters for a
// (client, product) pair. Created once through the campaign-creation flow and
// immutable thereafter.
type CampaignRecord struct {
	ClientID          string
	ProductID         string
	CampaignID        string // UUID, primary key
	CampaignType      string
	LengthDays        int
	TargetDemographic string
	CreatedAt         time.Time
}
