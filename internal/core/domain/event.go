package domain

// TrackKind names a serving event recorded against a campaign counter.
type TrackKind string

const (
	KindImpression TrackKind = "impression"
	KindClick      TrackKind = "click"
)

// Valid reports whether k is a known tracking kind.
func (k TrackKind) Valid() bool {
	return k == KindImpression || k == KindClick
}

// PaymentEvent is the already-verified payload handed over by the
// payment gateway integration. Signature checking and event parsing
// happen upstream; delivery is at-least-once and the same underlying
// transaction may arrive under more than one event id.
type PaymentEvent struct {
	EventID        string
	CampaignID     string
	Confirmed      bool
	ValidityMonths int
}
