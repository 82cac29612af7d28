package domain

// Role is the coarse authorization level carried by an actor. Identity
// and session handling live outside this service; the upstream gateway
// forwards the resolved role with each request.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Actor identifies who requested a lifecycle transition.
type Actor struct {
	ID   string
	Role Role
}

// Admin reports whether the actor holds the admin role.
func (a Actor) Admin() bool {
	return a.Role == RoleAdmin
}

// Owns reports whether the actor created the campaign.
func (a Actor) Owns(c *Campaign) bool {
	return a.ID != "" && a.ID == c.CreatedBy
}

// Allowed source statuses per lifecycle transition. A conditional update
// keyed on these slices is the only way a status may change, so a row
// can never skip an intermediate state even under concurrent requests.
var (
	// ReviewFrom: only freshly submitted campaigns enter review.
	ReviewFrom = []Status{StatusSubmitted}

	// ApproveFrom: review is optional, an admin may approve directly.
	ApproveFrom = []Status{StatusSubmitted, StatusUnderReview}

	// RejectFrom covers every non-terminal status.
	RejectFrom = []Status{
		StatusSubmitted,
		StatusUnderReview,
		StatusApproved,
		StatusAwaitingPayment,
		StatusActive,
	}

	// ArchiveFrom mirrors RejectFrom: archival is an admin side-exit
	// from any non-terminal status.
	ArchiveFrom = RejectFrom

	// CheckoutFrom permits idempotent re-entry while awaiting payment.
	CheckoutFrom = []Status{StatusApproved, StatusAwaitingPayment}
)
