package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_campaign_store.go -package=mocks promogen/internal/storage CampaignStore

import (
	"context"
	"database/sql"
	"fmt"
)

// CampaignStore defines the interface for campaign record operations.
type CampaignStore interface {
	// Insert inserts a single campaign record.
	// The record's CampaignID must be set (UUID) before calling this method.
	Insert(ctx context.Context, record *CampaignRecord) error
	// GetByClientAndProduct returns the campaign record for a (client, product)
	// pair. When duplicates exist, the first row is returned. Returns
	// ErrNotFound if no row matches.
	GetByClientAndProduct(ctx context.Context, clientID, productID string) (*CampaignRecord, error)
	// ListByClient returns all campaign records for a client.
	ListByClient(ctx context.Context, clientID string) ([]*CampaignRecord, error)
}

// CampaignRepo provides methods for campaign record operations.
// It implements the CampaignStore interface.
type CampaignRepo struct {
	db *sql.DB
}

// NewCampaignRepo creates a new CampaignRepo.
func NewCampaignRepo(db *sql.DB) *CampaignRepo {
	return &CampaignRepo{db: db}
}

// Insert inserts a single campaign record.
func (r *CampaignRepo) Insert(ctx context.Context, record *CampaignRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO campaign_data (client_id, product_id, campaign_id, campaign_type, length, target_demographic) VALUES (?, ?, ?, ?, ?, ?)",
		record.ClientID, record.ProductID, record.CampaignID, record.CampaignType, record.LengthDays, record.TargetDemographic,
	)
	if err != nil {
		return fmt.Errorf("failed to insert campaign record: %w", err)
	}
	return nil
}

// GetByClientAndProduct returns the campaign record for a (client, product) pair.
func (r *CampaignRepo) GetByClientAndProduct(ctx context.Context, clientID, productID string) (*CampaignRecord, error) {
	var record CampaignRecord
	err := r.db.QueryRowContext(ctx,
		"SELECT client_id, product_id, campaign_id, campaign_type, length, target_demographic, created_at FROM campaign_data WHERE client_id = ? AND product_id = ?",
		clientID, productID,
	).Scan(&record.ClientID, &record.ProductID, &record.CampaignID, &record.CampaignType, &record.LengthDays, &record.TargetDemographic, &record.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query campaign record: %w", err)
	}

	return &record, nil
}

// ListByClient returns all campaign records for a client.
// Returns an empty slice if none exist (not an error).
func (r *CampaignRepo) ListByClient(ctx context.Context, clientID string) ([]*CampaignRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT client_id, product_id, campaign_id, campaign_type, length, target_demographic, created_at FROM campaign_data WHERE client_id = ?",
		clientID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query campaign records: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var records []*CampaignRecord
	for rows.Next() {
		var record CampaignRecord
		if err := rows.Scan(&record.ClientID, &record.ProductID, &record.CampaignID, &record.CampaignType, &record.LengthDays, &record.TargetDemographic, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan campaign record: %w", err)
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return records, nil
}
