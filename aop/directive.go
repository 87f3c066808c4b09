package aop

import (
	"fmt"
	"strings"

	"github.com/google/shlex"
	"github.com/huandu/xstrings"
	"github.com/rs/zerolog"
)

type directiveOptions struct {
	namer  func(string) string
	block  bool
	logger *zerolog.Logger
}

// DirectiveOption configures Directives.
type DirectiveOption func(o *directiveOptions)

// WithNamer sets the function mapping aspect type names to directive names.
// Defaults to xstrings.ToSnakeCase.
func WithNamer(namer func(string) string) DirectiveOption {
	return func(o *directiveOptions) {
		o.namer = namer
	}
}

// WithBlockComments renders /*aop:aspect ...*/ instead of line comments.
func WithBlockComments() DirectiveOption {
	return func(o *directiveOptions) {
		o.block = true
	}
}

// WithLogger logs to logger instead of the package logger.
func WithLogger(logger zerolog.Logger) DirectiveOption {
	return func(o *directiveOptions) {
		o.logger = &logger
	}
}

// Directives renders one aop:aspect comment line per aspect of d, in the
// same order String uses, ready to be placed above the subject declaration.
func Directives(d *Descriptor, opts ...DirectiveOption) []string {
	o := &directiveOptions{namer: xstrings.ToSnakeCase, logger: logger()}
	for _, opt := range opts {
		opt(o)
	}

	aspects := d.Aspects()
	lines := make([]string, 0, len(aspects))
	for _, aspect := range aspects {
		body := MetaAopAspect + " Value=" + shellWord(o.namer(Name(aspect)))
		if o.block {
			lines = append(lines, "/*"+body+"*/")
		} else {
			lines = append(lines, "//"+body)
		}
	}
	o.logger.Debug().
		Str("descriptor", d.String()).
		Int("directives", len(lines)).
		Msg("Rendered aspect directives")
	return lines
}

// ParseDirective returns the aspect name of an aop:aspect directive line.
// Line comments, block comments and bare directives are accepted. Arguments
// are split into shell words the way gomelon's meta parser splits them, so
// Value=x, Value="x" and Value='x' all name x.
func ParseDirective(line string) (string, error) {
	text := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(text, "//"):
		text = strings.TrimPrefix(text, "//")
	case strings.HasPrefix(text, "/*"):
		if !strings.HasSuffix(text, "*/") {
			return "", fmt.Errorf("%w: unterminated comment %q", ErrMalformedDirective, line)
		}
		text = strings.TrimSuffix(strings.TrimPrefix(text, "/*"), "*/")
	}

	words, err := shlex.Split(text)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrMalformedDirective, line, err)
	}
	if len(words) == 0 || words[0] != MetaAopAspect {
		return "", fmt.Errorf("%w: not %s: %q", ErrMalformedDirective, MetaAopAspect, line)
	}

	var name string
	for _, word := range words[1:] {
		parts := strings.SplitN(word, "=", 2)
		if len(parts) != 2 || parts[0] != "Value" {
			return "", fmt.Errorf("%w: unknown argument %q in %q", ErrMalformedDirective, word, line)
		}
		name = parts[1]
	}
	if name == "" {
		return "", fmt.Errorf("%w: missing Value: %q", ErrMalformedDirective, line)
	}
	return name, nil
}

func shellWord(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\r\n\"'\\#`") {
		return s
	}
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s) + `"`
}
