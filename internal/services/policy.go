package services

// Role identifies the actor performing a purchase-request operation.
// Roles are carried per request; the system has no user accounts.
type Role string

const (
	RoleRequester Role = "requester"
	RoleApprover  Role = "approver"
)

// ApprovalPolicy decides which roles may create purchase requests and
// which may transition their status. The policy is injected into the
// request service so deployments can swap in a real authorization backend.
type ApprovalPolicy interface {
	CanCreate(role Role) bool
	CanTransition(role Role) bool
}

// RolePolicy is the default policy: requesters create, approvers
// transition.
type RolePolicy struct{}

// CanCreate allows only the requester role to create requests.
func (RolePolicy) CanCreate(role Role) bool { return role == RoleRequester }

// CanTransition allows only the approver role to change request status.
func (RolePolicy) CanTransition(role Role) bool { return role == RoleApprover }
