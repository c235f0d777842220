package model

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingType is InvalidConfig: every action/assert must name its type.
	ErrMissingType = errors.New("missing required type")
	// ErrDuplicateName is InvalidConfig: two actions/asserts claimed the same name.
	ErrDuplicateName = errors.New("duplicate name")
)

// nextName returns the smallest non-colliding name for baseType against
// the given set of names already taken: baseType, then baseType1,
// baseType2, and so on.
func nextName(taken map[string]bool, baseType string) string {
	if !taken[baseType] {
		return baseType
	}

	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s%d", baseType, i)
		if !taken[candidate] {
			return candidate
		}
	}
}

// VerifyActionNames assigns a default name to every action/inner-assert
// missing one and enforces uniqueness within the test. It mutates the
// slice in place and returns InvalidConfig-class errors on violation.
func VerifyActionNames(actions []Action) error {
	taken := make(map[string]bool, len(actions))

	for i := range actions {
		action := &actions[i]

		if action.Type == "" {
			return fmt.Errorf("action %d: %w", i, ErrMissingType)
		}

		if action.Name == "" {
			action.Name = nextName(taken, action.Type)
		}

		if taken[action.Name] {
			return fmt.Errorf("action %q: %w", action.Name, ErrDuplicateName)
		}

		taken[action.Name] = true

		if err := VerifyAssertNames(action.Asserts); err != nil {
			return fmt.Errorf("action %q inner asserts: %w", action.Name, err)
		}
	}

	return nil
}

// VerifyAssertNames assigns a default name to every assert missing one
// and enforces uniqueness within its scope (top-level or one action's
// inner asserts).
func VerifyAssertNames(asserts []Assert) error {
	taken := make(map[string]bool, len(asserts))

	for i := range asserts {
		assert := &asserts[i]

		if assert.Type == "" {
			return fmt.Errorf("assert %d: %w", i, ErrMissingType)
		}

		if assert.Name == "" {
			assert.Name = nextName(taken, assert.Type)
		}

		if taken[assert.Name] {
			return fmt.Errorf("assert %q: %w", assert.Name, ErrDuplicateName)
		}

		taken[assert.Name] = true
	}

	return nil
}

// HasAnyAsserts reports whether the test has top-level asserts or any
// action carries inner asserts — the signal used by cycle.DefaultCycles and
// ContinueRunning to decide whether this test can run unbounded.
func HasAnyAsserts(actions []Action, asserts []Assert) bool {
	if len(asserts) > 0 {
		return true
	}

	for _, action := range actions {
		if len(action.Asserts) > 0 {
			return true
		}
	}

	return false
}
