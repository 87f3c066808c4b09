package aop

import "github.com/gomelon/meta"

// MetaAopAspect is the directive naming one aspect of a struct.
const (
	MetaAopAspect = "aop:aspect"
)

// AllMetas returns the metas understood by this package.
func AllMetas() []meta.Meta {
	return []meta.Meta{&AspectMeta{}}
}

// AspectMeta is a parsed aop:aspect directive. Value holds the aspect name,
// written as Value=<name>.
type AspectMeta struct {
	Value string
}

// Target places the directive on structs.
func (a *AspectMeta) Target() meta.Type {
	return meta.TypeStruct
}

// Name returns the directive name.
func (a *AspectMeta) Name() string {
	return MetaAopAspect
}

// Repeatable reports that a struct may carry several aspects.
func (a *AspectMeta) Repeatable() bool {
	return true
}
