package models

import "time"

// Shift posting and coverage request states.
const (
	PostingOpen   = "open"
	PostingClosed = "closed"
	PostingFilled = "filled"

	ApplicationPending  = "pending"
	ApplicationApproved = "approved"

	RequestOpen     = "open"
	RequestResolved = "resolved"
)

// ShiftPosting is an open shift offered up for coverage.
type ShiftPosting struct {
	ID          string     `json:"id" bson:"id"`
	Day         string     `json:"day" bson:"day"`
	Start       string     `json:"start" bson:"start"`
	End         string     `json:"end" bson:"end"`
	PosterEmail string     `json:"posterEmail,omitempty" bson:"poster_email,omitempty"`
	Status      string     `json:"status" bson:"status"`
	CreatedAt   time.Time  `json:"createdAt" bson:"created_at"`
	ClosedAt    *time.Time `json:"closedAt,omitempty" bson:"closed_at,omitempty"`
	FilledAt    *time.Time `json:"filledAt,omitempty" bson:"filled_at,omitempty"`
}

// ShiftApplication is a worker's offer to take a posted shift.
type ShiftApplication struct {
	ID             string     `json:"id" bson:"id"`
	PostingID      string     `json:"postingId" bson:"posting_id"`
	ApplicantEmail string     `json:"applicantEmail" bson:"applicant_email"`
	Note           string     `json:"note,omitempty" bson:"note,omitempty"`
	Status         string     `json:"status" bson:"status"`
	CreatedAt      time.Time  `json:"createdAt" bson:"created_at"`
	ApprovedAt     *time.Time `json:"approvedAt,omitempty" bson:"approved_at,omitempty"`
}

// CoverageRequest asks for someone to cover the requestor's own shift.
type CoverageRequest struct {
	ID             string     `json:"id" bson:"id"`
	Day            string     `json:"day" bson:"day"`
	Start          string     `json:"start" bson:"start"`
	End            string     `json:"end" bson:"end"`
	RequestorEmail string     `json:"requestorEmail,omitempty" bson:"requestor_email,omitempty"`
	Status         string     `json:"status" bson:"status"`
	CreatedAt      time.Time  `json:"createdAt" bson:"created_at"`
	ResolvedAt     *time.Time `json:"resolvedAt,omitempty" bson:"resolved_at,omitempty"`
}

// ActiveCoverage records an approved application, with a snapshot of the
// posting as it stood at approval time.
type ActiveCoverage struct {
	ID            string        `json:"id" bson:"id"`
	PostingID     string        `json:"postingId" bson:"posting_id"`
	ApplicationID string        `json:"applicationId" bson:"application_id"`
	CreatedAt     time.Time     `json:"createdAt" bson:"created_at"`
	Posting       *ShiftPosting `json:"posting,omitempty" bson:"posting,omitempty"`
}
