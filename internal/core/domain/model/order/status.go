package order

import (
	"fmt"

	"shipsync/internal/pkg/errs"
)

// Status represents the workflow state of an order.
//
// State transitions:
//
//	Pending Approval ──────────┐
//	Pending Pallet Processing ─┼──> Ready for Processing ──> Synced (archived)
//	                           │            │
//	                           │            └──> Processing ──> Synced / Error
//	(initial states set by tag classification at ingestion)
//
// Ready for Processing accepts repeated approvals as a no-op so that
// concurrent manual triggers stay idempotent. Processing is entered when
// the ERP submission starts; Error is its failure outcome.
type Status int

const (
	// Unknown represents an invalid or undefined status. This value (0)
	// helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingApproval is assigned at ingestion to orders carrying a
	// replacement tag. Such orders wait for an explicit operator approval.
	PendingApproval

	// PendingPalletProcessing is assigned at ingestion to orders carrying
	// a pallet tag. They queue for manual pallet handling before release.
	PendingPalletProcessing

	// ReadyForProcessing marks an order eligible for the processing sweep.
	ReadyForProcessing

	// Processing marks an order whose ERP sales order submission is in
	// flight.
	Processing

	// Error marks an order whose ERP submission failed and needs operator
	// attention.
	Error

	// Synced is the terminal status written at archival time.
	Synced
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                 "Unknown",
		PendingApproval:         "Pending Approval",
		PendingPalletProcessing: "Pending Pallet Processing",
		ReadyForProcessing:      "Ready for Processing",
		Processing:              "Processing",
		Error:                   "Error",
		Synced:                  "Synced",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PendingApproval:         "Pending Approval",
		PendingPalletProcessing: "Pending Pallet Processing",
		ReadyForProcessing:      "Ready for Processing",
		Processing:              "Processing",
		Error:                   "Error",
		Synced:                  "Synced",
	}
}

// StatusFromName resolves the stored human-readable status name back to a
// Status value. Returns an error for unknown names so a corrupted record
// cannot silently re-enter the workflow in an undefined state.
func StatusFromName(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a known status name", name),
	)
}

// Validate checks that the Status is one of the defined workflow states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status. It implements
// fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsPending reports whether the status is one of the two approval queues.
func (s Status) IsPending() bool {
	return s == PendingApproval || s == PendingPalletProcessing
}

// Approve transitions the status to ReadyForProcessing.
//
// Valid transitions:
//   - PendingApproval -> ReadyForProcessing
//   - PendingPalletProcessing -> ReadyForProcessing
//   - ReadyForProcessing -> ReadyForProcessing (repeat approval, no-op)
func (s Status) Approve() (Status, error) {
	if !s.IsPending() && s != ReadyForProcessing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to approve", s),
		)
	}
	return ReadyForProcessing, nil
}

// BeginProcessing transitions the status to Processing. Only orders in
// ReadyForProcessing may enter processing; this is the idempotency check
// that keeps a concurrent manual trigger and the scheduled sweep from
// double-processing the same order.
func (s Status) BeginProcessing() (Status, error) {
	if s != ReadyForProcessing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to begin processing", s),
		)
	}
	return Processing, nil
}

// MarkSynced transitions the status to the terminal Synced state.
//
// Valid transitions:
//   - Processing -> Synced
//   - ReadyForProcessing -> Synced
func (s Status) MarkSynced() (Status, error) {
	if s != ReadyForProcessing && s != Processing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to mark synced", s),
		)
	}
	return Synced, nil
}

// MarkError flags a failed ERP submission. Only valid from Processing.
func (s Status) MarkError() (Status, error) {
	if s != Processing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to mark as errored", s),
		)
	}
	return Error, nil
}
