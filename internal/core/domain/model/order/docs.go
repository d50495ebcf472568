// Package order provides the Order aggregate of the kitchen order display and
// the policy that governs its status changes.
//
// The package includes:
//   - Order: the aggregate root owning its ticket items
//   - Item: one ticket line (dish, quantity, modifiers, special instructions)
//   - Status: pending, preparing, ready and the optional terminal done
//   - TransitionPolicy: the state machine deciding which status changes are legal
//   - Event: domain events recorded by the aggregate and published after commit
//
// Key business rules:
//   - Status moves forward: Pending -> Preparing -> Ready
//   - Pending and Preparing may be swapped (start/pause)
//   - Any non-terminal order may jump straight to Ready
//   - Nothing leaves a terminal status
//   - Items are owned by exactly one order and keep their ticket order
//   - Special instructions are kept verbatim; a case-insensitive "allergy"
//     substring flags the item for urgent treatment
package order
