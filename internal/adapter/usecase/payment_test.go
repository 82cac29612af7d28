package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"agora-ads/internal/core/domain"
	"agora-ads/internal/core/port"
	"agora-ads/internal/core/port/mocks"
)

func newTestReconciler(repo port.CampaignRepository, notifier port.Notifier, now time.Time) *Reconciler {
	return &Reconciler{
		repo:     repo,
		notifier: notifier,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:      func() time.Time { return now },
	}
}

func confirmedEvent(eventID string) domain.PaymentEvent {
	return domain.PaymentEvent{
		EventID:        eventID,
		CampaignID:     "c1",
		Confirmed:      true,
		ValidityMonths: 2,
	}
}

func TestHandleEventActivatesAndNotifiesOnce(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	notifier := mocks.NewMockNotifier(t)
	now := time.Now().UTC()

	activated := &domain.Campaign{ID: "c1", Status: domain.StatusActive, IsActive: true, CreatedBy: "owner"}

	repo.EXPECT().RecordPaymentEvent(mock.Anything, "ev-1", "c1").Return(true, nil)
	repo.EXPECT().Activate(mock.Anything, "c1", mock.AnythingOfType("time.Time"), 2).Return(activated, true, nil)
	notifier.EXPECT().NotifyActivation(mock.Anything, activated).Return(nil).Once()

	svc := newTestReconciler(repo, notifier, now)
	if err := svc.HandleEvent(context.Background(), confirmedEvent("ev-1")); err != nil {
		t.Fatalf("HandleEvent error: %v", err)
	}
}

// TestHandleEventDuplicateAbsorbed replays the same event id after a
// successful activation: the status guard absorbs the redelivery and no
// second notification goes out.
func TestHandleEventDuplicateAbsorbed(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	notifier := mocks.NewMockNotifier(t)

	already := &domain.Campaign{ID: "c1", Status: domain.StatusActive, IsActive: true}
	repo.EXPECT().RecordPaymentEvent(mock.Anything, "ev-1", "c1").Return(false, nil)
	repo.EXPECT().Activate(mock.Anything, "c1", mock.AnythingOfType("time.Time"), 2).Return(already, false, nil)

	svc := newTestReconciler(repo, notifier, time.Now())
	if err := svc.HandleEvent(context.Background(), confirmedEvent("ev-1")); err != nil {
		t.Fatalf("duplicate must be absorbed, got %v", err)
	}
	notifier.AssertNotCalled(t, "NotifyActivation", mock.Anything, mock.Anything)
}

// TestHandleEventRetryAfterActivationFailure delivers an event whose
// activation fails transiently, then redelivers it. The recorded event
// id must not swallow the retry: the conditional activation is
// re-driven and the campaign still activates.
func TestHandleEventRetryAfterActivationFailure(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	notifier := mocks.NewMockNotifier(t)
	svc := newTestReconciler(repo, notifier, time.Now())

	repo.EXPECT().RecordPaymentEvent(mock.Anything, "ev-1", "c1").Return(true, nil).Once()
	repo.EXPECT().Activate(mock.Anything, "c1", mock.AnythingOfType("time.Time"), 2).
		Return(nil, false, errors.New("connection reset")).Once()

	if err := svc.HandleEvent(context.Background(), confirmedEvent("ev-1")); err == nil {
		t.Fatal("transient activation failure must surface so the gateway redelivers")
	}

	activated := &domain.Campaign{ID: "c1", Status: domain.StatusActive, IsActive: true}
	repo.EXPECT().RecordPaymentEvent(mock.Anything, "ev-1", "c1").Return(false, nil).Once()
	repo.EXPECT().Activate(mock.Anything, "c1", mock.AnythingOfType("time.Time"), 2).
		Return(activated, true, nil).Once()
	notifier.EXPECT().NotifyActivation(mock.Anything, activated).Return(nil).Once()

	if err := svc.HandleEvent(context.Background(), confirmedEvent("ev-1")); err != nil {
		t.Fatalf("redelivery must activate the campaign, got %v", err)
	}
}

// TestHandleEventAlternateShapeAbsorbed delivers a second event with a
// different id for the same transaction. The status guard in the
// conditional activation absorbs it without a notification.
func TestHandleEventAlternateShapeAbsorbed(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	notifier := mocks.NewMockNotifier(t)

	already := &domain.Campaign{ID: "c1", Status: domain.StatusActive, IsActive: true}
	repo.EXPECT().RecordPaymentEvent(mock.Anything, "ev-2", "c1").Return(true, nil)
	repo.EXPECT().Activate(mock.Anything, "c1", mock.AnythingOfType("time.Time"), 2).Return(already, false, nil)

	svc := newTestReconciler(repo, notifier, time.Now())
	if err := svc.HandleEvent(context.Background(), confirmedEvent("ev-2")); err != nil {
		t.Fatalf("alternate-shape replay must be absorbed, got %v", err)
	}
	notifier.AssertNotCalled(t, "NotifyActivation", mock.Anything, mock.Anything)
}

func TestHandleEventMalformed(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	notifier := mocks.NewMockNotifier(t)
	svc := newTestReconciler(repo, notifier, time.Now())
	ctx := context.Background()

	cases := []domain.PaymentEvent{
		{CampaignID: "c1", Confirmed: true, ValidityMonths: 1},        // missing event id
		{EventID: "ev", Confirmed: true, ValidityMonths: 1},           // missing campaign id
		{EventID: "ev", CampaignID: "c1", ValidityMonths: 1},          // not confirmed
		{EventID: "ev", CampaignID: "c1", Confirmed: true},            // zero months
	}
	for i, ev := range cases {
		if err := svc.HandleEvent(ctx, ev); !errors.Is(err, port.ErrExternalEvent) {
			t.Fatalf("case %d: expected external event error, got %v", i, err)
		}
	}
	repo.AssertNotCalled(t, "Activate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleEventUnknownCampaign(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	notifier := mocks.NewMockNotifier(t)

	repo.EXPECT().RecordPaymentEvent(mock.Anything, "ev-1", "c1").Return(true, nil)
	repo.EXPECT().Activate(mock.Anything, "c1", mock.AnythingOfType("time.Time"), 2).
		Return(nil, false, port.ErrNotFound)

	svc := newTestReconciler(repo, notifier, time.Now())
	err := svc.HandleEvent(context.Background(), confirmedEvent("ev-1"))
	if !errors.Is(err, port.ErrExternalEvent) {
		t.Fatalf("expected external event error, got %v", err)
	}
}

// TestHandleEventNotifierFailureIsIsolated ensures a broken
// notification channel never rolls back or fails the activation.
func TestHandleEventNotifierFailureIsIsolated(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	notifier := mocks.NewMockNotifier(t)

	activated := &domain.Campaign{ID: "c1", Status: domain.StatusActive, IsActive: true}
	repo.EXPECT().RecordPaymentEvent(mock.Anything, "ev-1", "c1").Return(true, nil)
	repo.EXPECT().Activate(mock.Anything, "c1", mock.AnythingOfType("time.Time"), 2).Return(activated, true, nil)
	notifier.EXPECT().NotifyActivation(mock.Anything, activated).Return(errors.New("broker down"))

	svc := newTestReconciler(repo, notifier, time.Now())
	if err := svc.HandleEvent(context.Background(), confirmedEvent("ev-1")); err != nil {
		t.Fatalf("notification failure must not propagate, got %v", err)
	}
}
