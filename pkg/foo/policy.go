package foo

import (
	"errors"
	"fmt"
	"strings"
)

// Policy selects how Square handles products outside the int64 range.
type Policy string

const (
	// PolicyChecked fails with ErrOverflow.
	PolicyChecked Policy = "checked"
	// PolicyWrap wraps around.
	PolicyWrap Policy = "wrap"
	// PolicyWide promotes to arbitrary precision.
	PolicyWide Policy = "wide"
)

// ErrUnknownPolicy is returned by ParsePolicy for unrecognised names.
var ErrUnknownPolicy = errors.New("unknown overflow policy")

// ParsePolicy parses a policy name. An empty name selects PolicyChecked.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PolicyChecked, nil
	case PolicyChecked, PolicyWrap, PolicyWide:
		return p, nil
	default:
		return "", fmt.Errorf("%w %q (want checked|wrap|wide)", ErrUnknownPolicy, s)
	}
}
