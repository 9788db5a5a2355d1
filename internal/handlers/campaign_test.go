package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"promogen/internal/storage"
	storage_mocks "promogen/internal/storage/mocks"
)

func newCampaignRouter(handler *CampaignHandler) http.Handler {
	r := chi.NewRouter()
	r.Method(http.MethodPost, "/api/campaigns/{clientID}/{productID}", handler)
	return r
}

func TestCampaignHandler_ServeHTTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	campaigns := storage_mocks.NewMockCampaignStore(ctrl)
	router := newCampaignRouter(NewCampaignHandler(campaigns))

	var inserted *storage.CampaignRecord
	campaigns.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, record *storage.CampaignRecord) error {
			inserted = record
			return nil
		})

	payload, _ := json.Marshal(CreateCampaignRequest{
		CampaignType:      "product launch",
		Length:            7,
		TargetDemographic: "young professionals",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/campaigns/c1/p1", bytes.NewReader(payload))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("create campaign status = %v, body = %s", w.Code, w.Body.String())
	}

	var resp CreateCampaignResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if _, err := uuid.Parse(resp.CampaignID); err != nil {
		t.Errorf("campaign_id %q is not a UUID: %v", resp.CampaignID, err)
	}

	if inserted == nil {
		t.Fatal("no record inserted")
	}
	if inserted.ClientID != "c1" || inserted.ProductID != "p1" {
		t.Errorf("inserted identity = %v/%v", inserted.ClientID, inserted.ProductID)
	}
	if inserted.CampaignID != resp.CampaignID {
		t.Errorf("inserted campaign id %q differs from response %q", inserted.CampaignID, resp.CampaignID)
	}
	if inserted.LengthDays != 7 || inserted.CampaignType != "product launch" {
		t.Errorf("inserted record = %+v", inserted)
	}
}

func TestCampaignHandler_ServeHTTP_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "invalid json", body: "nope"},
		{name: "missing campaign type", body: `{"length": 7, "target_demographic": "adults"}`},
		{name: "zero length", body: `{"campaign_type": "launch", "length": 0, "target_demographic": "adults"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			campaigns := storage_mocks.NewMockCampaignStore(ctrl)
			router := newCampaignRouter(NewCampaignHandler(campaigns))

			req := httptest.NewRequest(http.MethodPost, "/api/campaigns/c1/p1", bytes.NewReader([]byte(tt.body)))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("create campaign status = %v, want %v", w.Code, http.StatusBadRequest)
			}
		})
	}
}
