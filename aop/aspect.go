package aop

import "reflect"

// Aspect is implemented by aspect tag types. Only the type matters,
// tag values are never inspected. T and *T are distinct tags when both
// implement Aspect.
type Aspect interface {
	AspectTag()
}

// Base can be embedded to turn a struct into an aspect tag type.
//
//	type Transactional struct{ aop.Base }
type Base struct{}

// AspectTag marks Base and the types embedding it as aspects.
func (Base) AspectTag() {}

var aspectType = reflect.TypeOf((*Aspect)(nil)).Elem()

// Tag returns the tag type of A.
func Tag[A Aspect]() reflect.Type {
	return typeOf[A]()
}

// IsAspect reports whether t is an aspect tag type.
func IsAspect(t reflect.Type) bool {
	return t != nil && t.Kind() != reflect.Interface && t.Implements(aspectType)
}

// Name returns the display name of t. Pointer types use their element name,
// unnamed types their type literal.
func Name(t reflect.Type) string {
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func pkgPath(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.PkgPath()
}
