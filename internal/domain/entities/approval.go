package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ApprovalAction represents a reviewer decision
type ApprovalAction string

const (
	ApprovalActionApproved ApprovalAction = "APPROVED"
	ApprovalActionRejected ApprovalAction = "REJECTED"
)

// ApprovalRecord is an append-only audit entry, written exactly once
// per transition and never mutated.
type ApprovalRecord struct {
	ID         uuid.UUID          `json:"id"`
	AccountID  uuid.UUID          `json:"accountId"`
	ActorID    uuid.UUID          `json:"actorId"`
	Action     ApprovalAction     `json:"action"`
	FromStatus RegistrationStatus `json:"fromStatus"`
	ToStatus   RegistrationStatus `json:"toStatus"`
	Reason     null.String        `json:"reason,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
}

// RejectInput carries the mandatory rejection reason
type RejectInput struct {
	Reason string `json:"reason" binding:"required,min=3,max=500"`
}
