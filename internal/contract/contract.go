// internal/contract/contract.go

// Package contract provides development-time precondition and postcondition
// checks. A failed check is a programming error and panics with a *Violation.
// Checks are skipped entirely in binaries built with the "release" tag.
package contract

import "fmt"

// Kind identifies which side of a call a violated condition belongs to.
type Kind string

const (
	Precondition  Kind = "precondition"
	Postcondition Kind = "postcondition"
)

// Violation is the panic value raised by a failed check.
type Violation struct {
	Kind    Kind
	Message string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s violated: %s", v.Kind, v.Message)
}

// Require panics with a precondition Violation when cond is false.
func Require(cond bool, message string) {
	if enabled && !cond {
		panic(&Violation{Kind: Precondition, Message: message})
	}
}

// Ensure panics with a postcondition Violation when cond is false.
func Ensure(cond bool, message string) {
	if enabled && !cond {
		panic(&Violation{Kind: Postcondition, Message: message})
	}
}

// Enabled reports whether checks are compiled into this binary.
func Enabled() bool {
	return enabled
}
