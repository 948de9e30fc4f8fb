// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

// DefaultEpsilon is the tolerance callers use for ValidateVecStochastic when
// they have no better bound of their own.
const DefaultEpsilon = 1e-9

// DefaultValidateNaNInf toggles finite-value validation on ingestion and Set.
//
// Probability tables legitimately hold -Inf after a log transform, so the
// policy can be switched off per matrix with WithNoNaNInfCheck.
const DefaultValidateNaNInf = true

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNaNInf bool
}

// gatherOptions applies opts in order over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithNoNaNInfCheck disables NaN/Inf rejection on ingestion and Set.
func WithNoNaNInfCheck() Option {
	return func(o *Options) { o.validateNaNInf = false }
}
