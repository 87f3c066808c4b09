package aop

import "strings"

// String renders d as Subject/AspectA/AspectB with aspects sorted by name.
func (d *Descriptor) String() string {
	if d == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(Name(d.subject))
	for _, aspect := range d.Aspects() {
		sb.WriteByte('/')
		sb.WriteString(Name(aspect))
	}
	return sb.String()
}
