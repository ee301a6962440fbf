package shaderquad

import "github.com/rs/zerolog"

// Option configures a Program during New.
type Option func(*Program)

// WithName sets the shader name used in diagnostics. Default "shader".
func WithName(name string) Option {
	return func(p *Program) {
		p.name = name
	}
}

// WithAttribute sets the name of the 2-component vertex position attribute
// looked up in the linked program. Default "position".
func WithAttribute(name string) Option {
	return func(p *Program) {
		p.attrib = name
	}
}

// WithLogger sets the diagnostics logger. Construction failures log at
// error level, per-call uniform failures at warn level. Default is a no-op
// logger.
func WithLogger(log zerolog.Logger) Option {
	return func(p *Program) {
		p.log = log
	}
}
