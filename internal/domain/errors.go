package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	ErrMsgAlreadyClaimed    = "daily chest already claimed"
	ErrMsgNotDead           = "pet is not dead"
	ErrMsgPetIsDead         = "pet is dead"
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgInsufficientGems  = "insufficient gems"
	ErrMsgUnknownItem       = "unknown item"
	ErrMsgNotOwned          = "item not owned"
	ErrMsgAlreadyOwned      = "item already owned"
	ErrMsgNoSelection       = "no item selected"
)

// Common domain errors. All simulation errors are recoverable and
// user-facing; none terminates the tick loop. Wrap with
// fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrAlreadyClaimed    = errors.New(ErrMsgAlreadyClaimed)
	ErrNotDead           = errors.New(ErrMsgNotDead)
	ErrPetIsDead         = errors.New(ErrMsgPetIsDead)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrInsufficientGems  = errors.New(ErrMsgInsufficientGems)
	ErrUnknownItem       = errors.New(ErrMsgUnknownItem)
	ErrNotOwned          = errors.New(ErrMsgNotOwned)
	ErrAlreadyOwned      = errors.New(ErrMsgAlreadyOwned)
	ErrNoSelection       = errors.New(ErrMsgNoSelection)
)
