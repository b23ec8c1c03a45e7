package pathmap

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrNoSourceData is returned by [Builder.Build] when no source data was
// bound with [Builder.WithSourceData].
var ErrNoSourceData = errors.New("pathmap: source data must be filled")

// DeclarationErrors is a map of rule option names to the reason a rule
// declaration was rejected. It is an alias for [validation.Errors] from
// ozzo-validation.
type DeclarationErrors = validation.Errors

// RuleError wraps a failure raised while a rule was being applied.
type RuleError struct {
	// Op is the step that failed: transform, fallback, skip_if, builder or hook.
	Op   string
	From string
	To   string
	Err  error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("pathmap: %s %q -> %q: %v", e.Op, e.From, e.To, e.Err)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}

func ruleError(op string, r *Rule, err error) error {
	return &RuleError{Op: op, From: r.From(), To: r.To(), Err: err}
}
