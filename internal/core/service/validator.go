package service

import (
	"context"
	"guildbot/internal/core/domain"
)

type ValidationResult int

const (
	Valid ValidationResult = iota
	ArityInvalid
	RoleInvalid
)

func (r ValidationResult) String() string {
	switch r {
	case Valid:
		return "valid"
	case ArityInvalid:
		return "arity invalid"
	case RoleInvalid:
		return "role invalid"
	default:
		return "unknown"
	}
}

// Validator runs the argument count check and then the role check. The role check,
// which costs gateway calls, only runs when the argument count is acceptable.
type Validator struct {
	authorizer Authorizer
}

func NewValidator(authorizer Authorizer) *Validator {
	return &Validator{authorizer: authorizer}
}

func (v *Validator) Validate(ctx context.Context, definition domain.Definition, args string,
	message *domain.Message) (ValidationResult, error) {
	if !definition.AcceptsArgCount(domain.CountArgs(args)) {
		return ArityInvalid, nil
	}

	ok, err := v.authorizer.IsAuthorized(ctx, definition, message)
	if err != nil {
		return RoleInvalid, err
	}
	if !ok {
		return RoleInvalid, nil
	}

	return Valid, nil
}
