package domain

import "errors"

// Error taxonomy of the core. Every rejected operation maps to exactly one
// of these kinds so the presentation layer can show actionable messages.
var (
	// ErrInvalidContent is returned when submitted content is empty or exceeds the size limit
	ErrInvalidContent = errors.New("invalid content")

	// ErrDuplicateCertificate is returned when a valid certificate already exists for a content ID
	ErrDuplicateCertificate = errors.New("certificate already exists for content")

	// ErrUnauthorizedCreator is returned when the caller does not own the referenced content record
	ErrUnauthorizedCreator = errors.New("creator does not own content")

	// ErrAlreadyRevoked is returned when revoking a certificate that is already revoked
	ErrAlreadyRevoked = errors.New("certificate already revoked")

	// ErrUnknownChannelType is returned when no active split rule exists for a channel type
	ErrUnknownChannelType = errors.New("unknown channel type")

	// ErrNegativeAmount is returned when a monetization event carries a negative gross amount
	ErrNegativeAmount = errors.New("negative amount")

	// ErrInsufficientBalance is returned when a withdrawal exceeds the available balance
	ErrInsufficientBalance = errors.New("insufficient available balance")

	// ErrBelowMinimum is returned when a withdrawal is below the configured minimum
	ErrBelowMinimum = errors.New("amount below withdrawal minimum")

	// ErrImmutableRuleViolation is returned when a proposal targets a category outside the allow-list
	ErrImmutableRuleViolation = errors.New("category is not votable")

	// ErrProposalClosed is returned when voting on a proposal past its close time
	ErrProposalClosed = errors.New("proposal is closed")

	// ErrNotFounder is returned when a non-founder attempts a veto
	ErrNotFounder = errors.New("identity is not a verified founder")

	// ErrWeightExceedsCap is returned when a vote weight exceeds the per-voter cap
	ErrWeightExceedsCap = errors.New("vote weight exceeds cap")

	// ErrAnchorTimeout is returned when the timestamp or anchor collaborator
	// does not answer within the bounded timeout. Distinct from validation
	// errors so callers can choose to retry.
	ErrAnchorTimeout = errors.New("ledger anchor timed out")

	// ErrNotFound is returned when a referenced record does not exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition is returned on a disallowed withdrawal state transition
	ErrInvalidTransition = errors.New("invalid status transition")
)
