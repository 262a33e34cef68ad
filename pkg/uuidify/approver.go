package uuidify

import "context"

// Approver decides whether a single planned rename may go ahead.
//
// Implementations:
//   - InteractiveApprover: asks on the terminal and waits for a Y/YES answer
//   - ForcedApprover: approves everything, used when confirmation is disabled
type Approver interface {
	// RequestApproval asks whether source may be renamed to destination.
	//
	// Returns:
	//   - bool: true if approved, false if declined
	//   - error: only for cancellation; a failed or empty answer is a decline
	RequestApproval(ctx context.Context, source, destination string) (bool, error)
}
