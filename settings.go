// Copyright (c) 2026 Server Settings Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package settings

// Source represents anything which can resolve a setting name to a value.
//
// A Source must be safe for concurrent use and must never fail: absence of
// a value is reported via ok, not via an error. Sources which encounter
// internal errors are expected to recover locally and report absence.
type Source interface {
	Lookup(name string) (value string, ok bool)
}

// SourceFunc is a functional implementation of the Source interface.
type SourceFunc func(string) (string, bool)

// Lookup implements the Source interface.
func (f SourceFunc) Lookup(name string) (string, bool) {
	return f(name)
}

// Chain returns a Source which consults the given sources in order and
// returns the first value found. Earlier sources win. The chain short
// circuits on the first hit, so later sources are never touched for a
// name an earlier source can resolve.
func Chain(srcs ...Source) Source {
	return chain(srcs)
}

type chain []Source

// Lookup implements the Source interface.
func (c chain) Lookup(name string) (string, bool) {
	for _, src := range c {
		v, ok := src.Lookup(name)
		if ok {
			return v, true
		}
	}
	return "", false
}
