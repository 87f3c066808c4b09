package aop

import (
	"fmt"
	"reflect"
	"sort"
)

// Operand is the left side of Combine: a plain subject created by On or
// OnType, or an existing *Descriptor.
type Operand interface {
	operand()
}

type subject struct {
	typ reflect.Type
}

func (subject) operand() {}

// On returns T as a subject operand.
func On[T any]() Operand {
	return subject{typ: typeOf[T]()}
}

// OnType returns t as a subject operand.
func OnType(t reflect.Type) Operand {
	return subject{typ: t}
}

// Descriptor records a subject type and the aspects applied to it.
// A Descriptor is never modified once returned. Descriptors are built with
// Combine, the zero value is not a valid operand.
type Descriptor struct {
	subject reflect.Type
	aspects map[reflect.Type]struct{}
}

func (*Descriptor) operand() {}

// Subject returns the type the aspects were applied to.
func (d *Descriptor) Subject() reflect.Type {
	return d.subject
}

// Len returns the number of distinct aspects.
func (d *Descriptor) Len() int {
	return len(d.aspects)
}

// Has reports whether aspect was applied.
func (d *Descriptor) Has(aspect reflect.Type) bool {
	_, ok := d.aspects[aspect]
	return ok
}

// Aspects returns the applied aspects in rendering order.
func (d *Descriptor) Aspects() []reflect.Type {
	aspects := make([]reflect.Type, 0, len(d.aspects))
	for aspect := range d.aspects {
		aspects = append(aspects, aspect)
	}
	sort.Slice(aspects, func(i, j int) bool {
		ni, nj := Name(aspects[i]), Name(aspects[j])
		if ni != nj {
			return ni < nj
		}
		pi, pj := pkgPath(aspects[i]), pkgPath(aspects[j])
		if pi != pj {
			return pi < pj
		}
		return aspects[i].String() < aspects[j].String()
	})
	return aspects
}

// SameAspects reports whether d and other carry the same aspect set.
// Subjects are not compared.
func (d *Descriptor) SameAspects(other *Descriptor) bool {
	if len(d.aspects) != len(other.aspects) {
		return false
	}
	for aspect := range d.aspects {
		if _, ok := other.aspects[aspect]; !ok {
			return false
		}
	}
	return true
}

// Combine applies the aspect right to left.
//
// A subject operand yields a new descriptor holding only right. A descriptor
// operand yields a new descriptor with right added to its aspects, left itself
// is unchanged. Nil operands and zero descriptors return ErrNotApplicable.
// Combine panics if right is not an aspect tag type.
func Combine(left Operand, right reflect.Type) (*Descriptor, error) {
	if right == nil {
		return notApplicable(left, "nil aspect")
	}
	if !IsAspect(right) {
		panic(fmt.Errorf("aop: %s is not an aspect type, it must implement %s", right, aspectType))
	}

	var (
		subj    reflect.Type
		aspects map[reflect.Type]struct{}
	)
	switch left := left.(type) {
	case subject:
		if left.typ == nil {
			return notApplicable(left, "nil subject")
		}
		subj = left.typ
		aspects = make(map[reflect.Type]struct{}, 1)
	case *Descriptor:
		if left == nil {
			return notApplicable(left, "nil descriptor")
		}
		if left.subject == nil || len(left.aspects) == 0 {
			return notApplicable(left, "empty descriptor")
		}
		subj = left.subject
		aspects = make(map[reflect.Type]struct{}, len(left.aspects)+1)
		for aspect := range left.aspects {
			aspects[aspect] = struct{}{}
		}
	default:
		return notApplicable(left, "unknown operand")
	}
	aspects[right] = struct{}{}

	logger().Debug().
		Str("subject", Name(subj)).
		Str("aspect", Name(right)).
		Int("aspects", len(aspects)).
		Msg("Aspect applied")
	return &Descriptor{subject: subj, aspects: aspects}, nil
}

// Apply combines tags into left from left to right, the way
// Klass/A/B/C would. At least one tag is required.
func Apply(left Operand, tags ...reflect.Type) (*Descriptor, error) {
	if len(tags) == 0 {
		return notApplicable(left, "no aspects")
	}
	var (
		d   *Descriptor
		err error
	)
	for _, tag := range tags {
		if d, err = Combine(left, tag); err != nil {
			return nil, err
		}
		left = d
	}
	return d, nil
}

// With returns a new descriptor with aspect added. It panics where Combine
// would fail.
func (d *Descriptor) With(aspect reflect.Type) *Descriptor {
	return Must(Combine(d, aspect))
}

// Must returns d, panicking if err is not nil.
func Must(d *Descriptor, err error) *Descriptor {
	if err != nil {
		panic(err)
	}
	return d
}

func notApplicable(left Operand, reason string) (*Descriptor, error) {
	logger().Debug().
		Str("operand", fmt.Sprintf("%T", left)).
		Str("reason", reason).
		Msg("Aspect not applicable")
	return nil, fmt.Errorf("%w: %s", ErrNotApplicable, reason)
}
