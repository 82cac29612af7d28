package httpadapter

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agora-ads/internal/adapter/pricing"
	"agora-ads/internal/adapter/usecase"
	"agora-ads/internal/config/configs"
	"agora-ads/internal/core/domain"
	"agora-ads/internal/core/port"
	"agora-ads/internal/core/port/mocks"
)

func newTestHandler(t *testing.T, repo *mocks.MockCampaignRepository) *Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	notifier := mocks.NewMockNotifier(t)
	lifecycle := usecase.NewLifecycle(repo, pricing.NewTable(configs.Pricing{}))
	ads := usecase.NewAdServer(repo)
	reconciler := usecase.NewReconciler(repo, notifier, logger)
	return NewHandler(lifecycle, ads, reconciler, logger)
}

func TestQueryEndpointEmptyResult(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().
		ListEligible(mock.Anything, domain.PlacementHomeTop, mock.AnythingOfType("time.Time")).
		Return(nil, nil)

	h := newTestHandler(t, repo)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ads/query",
		strings.NewReader(`{"placement":"home_top","limit":3}`))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestQueryEndpointBadPlacement(t *testing.T) {
	h := newTestHandler(t, mocks.NewMockCampaignRepository(t))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ads/query",
		strings.NewReader(`{"placement":"billboard"}`))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTrackEndpoint(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().
		IncrementCounter(mock.Anything, "c1", domain.KindClick).
		Return(false, nil)

	h := newTestHandler(t, repo)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ads/track",
		strings.NewReader(`{"campaign_id":"c1","kind":"click"}`))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	// a reached cap is a soft refusal, not an HTTP error
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"accepted":false}`, rec.Body.String())
}

func TestLifecycleEndpointPermissions(t *testing.T) {
	h := newTestHandler(t, mocks.NewMockCampaignRepository(t))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns/c1/approve", nil)
	req.Header.Set("X-User-Id", "member-1")
	req.Header.Set("X-User-Role", "member")
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRejectEndpointConflict(t *testing.T) {
	// archived campaign: the conditional update matches no row and the
	// repository reports a conflict
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().
		UpdateStatus(mock.Anything, "c1", domain.RejectFrom, mock.AnythingOfType("port.StatusChange")).
		Return(nil, fmt.Errorf("%w: archived cannot move to rejected", port.ErrConflict))

	h := newTestHandler(t, repo)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns/c1/reject",
		strings.NewReader(`{"reason":"low quality"}`))
	req.Header.Set("X-User-Id", "admin-1")
	req.Header.Set("X-User-Role", "admin")
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestWebhookEndpoint(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	activated := &domain.Campaign{ID: "c1", Status: domain.StatusActive, IsActive: true}
	repo.EXPECT().RecordPaymentEvent(mock.Anything, "ev-1", "c1").Return(true, nil)
	repo.EXPECT().Activate(mock.Anything, "c1", mock.AnythingOfType("time.Time"), 1).Return(activated, true, nil)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().NotifyActivation(mock.Anything, activated).Return(nil)

	lifecycle := usecase.NewLifecycle(repo, pricing.NewTable(configs.Pricing{}))
	ads := usecase.NewAdServer(repo)
	reconciler := usecase.NewReconciler(repo, notifier, logger)
	h := NewHandler(lifecycle, ads, reconciler, logger)

	body := `{"event_id":"ev-1","campaign_id":"c1","confirmed":true,"validity_months":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/payment", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusAccepted, rec.Code)

	// unconfirmed events signal rejection so the gateway can retry
	req = httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/payment",
		strings.NewReader(`{"event_id":"ev-2","campaign_id":"c1","confirmed":false,"validity_months":1}`))
	rec = httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatsEndpoint(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().
		Stats(mock.Anything, mock.AnythingOfType("port.StatsReq")).
		Return(&port.StatsResp{Impressions: 42, Clicks: 7}, nil)

	h := newTestHandler(t, repo)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats/overview?campaign_id=c1", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"Impressions":42,"Clicks":7}`, rec.Body.String())
}
