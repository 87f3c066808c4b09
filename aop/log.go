package aop

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

const component = "aop"

var current atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	current.Store(&nop)
}

// SetLogger sets the logger used by the package. Nothing is logged until
// it is called.
func SetLogger(l zerolog.Logger) {
	l = l.With().Str("component", component).Logger()
	current.Store(&l)
}

func logger() *zerolog.Logger {
	return current.Load()
}
