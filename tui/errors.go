package tui

import "errors"

var (
	// ErrUnimplementedPolicy is returned when layout is requested for a
	// reserved wrap policy. Callers branch on it with errors.Is; there
	// is no silent fallback to another policy.
	ErrUnimplementedPolicy = errors.New("wrap policy not implemented")

	// ErrUnknownPolicy is returned for a policy value outside the
	// declared set.
	ErrUnknownPolicy = errors.New("unknown wrap policy")
)
