// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction and the
// elimination engine. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions / resolveOptions helpers.
//
// Design goals:
//   - Deterministic behavior: no global mutable state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options travel with a Matrix: derived matrices inherit the left
//     operand's options, so a policy chosen at construction applies to the
//     whole pipeline.
package matrix

import (
	"io"

	"github.com/charmbracelet/log"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf rejects NaN/±Inf on construction and row updates.
	DefaultValidateNaNInf = true

	// DefaultAllowSingular controls what Inverse/Solve do on a zero pivot.
	// false ⇒ fail with ErrSingular; true ⇒ return the degenerate result of
	// the reduction unchanged.
	DefaultAllowSingular = false

	// DefaultLogPrefix is the prefix attached to loggers passed via WithLogger.
	DefaultLogPrefix = "matrix"
)

const panicNilLogger = "matrix: WithLogger: logger must be non-nil"

// discardLogger is the default sink; nothing is written anywhere.
var discardLogger = log.New(io.Discard)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	validateNaNInf bool        // DefaultValidateNaNInf
	allowSingular  bool        // DefaultAllowSingular
	logger         *log.Logger // discardLogger unless WithLogger
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on construction and
// row updates. Arithmetic then propagates IEEE-754 semantics untouched.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithAllowSingular makes Inverse and Solve return whatever the reduction
// produced when a zero pivot is met, instead of failing with ErrSingular.
// The result is then not a true inverse.
func WithAllowSingular() Option {
	return func(o *Options) { o.allowSingular = true }
}

// WithSingularCheck restores the default ErrSingular behavior.
func WithSingularCheck() Option {
	return func(o *Options) { o.allowSingular = false }
}

// WithLogger routes debug records of the elimination engine to l.
// The logger is tagged with DefaultLogPrefix.
//
// Panics when l is nil (programmer error).
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	tagged := l.WithPrefix(DefaultLogPrefix)

	return func(o *Options) { o.logger = tagged }
}

// NewMatrixOptions resolves setters on top of the defaults. Intended for
// callers (package vector) that keep options outside a Matrix.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Logger returns the effective logger (never nil).
func (o Options) Logger() *log.Logger {
	if o.logger == nil {
		return discardLogger
	}

	return o.logger
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
		allowSingular:  DefaultAllowSingular,
		logger:         discardLogger,
	}
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	return resolveOptions(defaultOptions(), user...)
}

// resolveOptions applies user setters on top of base, typically the options
// carried by an operand.
// Complexity: O(k) for k=len(user).
func resolveOptions(base Options, user ...Option) Options {
	o := base
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	if o.logger == nil {
		o.logger = discardLogger
	}

	return o
}
