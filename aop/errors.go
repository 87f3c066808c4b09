package aop

import "errors"

var (
	// ErrNotApplicable is returned when the operands can't be combined.
	ErrNotApplicable = errors.New("aop: operation not applicable")
	// ErrMalformedDirective is returned for lines that are not aop:aspect directives.
	ErrMalformedDirective = errors.New("aop: malformed directive")
)
