// Copyright (c) 2026 Server Settings Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package settings

import "strconv"

// Resolver exposes typed getters over a single Source, which is usually
// a Chain of several sources.
//
// Getters come in two forms. The plain form returns an error when the
// setting is missing or malformed. The *Or form takes a default and never
// fails: the default is returned both when no source has a value and when
// the resolved value fails to parse.
type Resolver struct {
	src Source
}

// New returns a Resolver over the given Source.
func New(src Source) *Resolver {
	return &Resolver{src: src}
}

// String resolves a setting as a string. It fails with MissingSettingError
// if no source has a value for the given name.
func (r *Resolver) String(name string) (string, error) {
	v, ok := r.src.Lookup(name)
	if !ok {
		return "", MissingSettingError{Name: name}
	}
	return v, nil
}

// StringOr resolves a setting as a string, returning def if no source has
// a value for the given name.
func (r *Resolver) StringOr(name, def string) string {
	v, ok := r.src.Lookup(name)
	if !ok {
		return def
	}
	return v
}

// Int resolves a setting as an integer. It fails with MissingSettingError
// if no source has a value, and with InvalidSettingFormatError if the
// resolved value can not be parsed as an integer.
func (r *Resolver) Int(name string) (int, error) {
	v, err := r.String(name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, InvalidSettingFormatError{Name: name, Value: v, Type: "int", Cause: err}
	}
	return n, nil
}

// IntOr resolves a setting as an integer, returning def if no source has a
// value, if the resolved value is empty, or if it fails to parse. An empty
// value short circuits to def without a parse attempt.
func (r *Resolver) IntOr(name string, def int) int {
	v, ok := r.src.Lookup(name)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Bool resolves a setting as a boolean. It fails with MissingSettingError
// if no source has a value, and with InvalidSettingFormatError if the
// resolved value can not be parsed as a boolean.
func (r *Resolver) Bool(name string) (bool, error) {
	v, err := r.String(name)
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, InvalidSettingFormatError{Name: name, Value: v, Type: "bool", Cause: err}
	}
	return b, nil
}

// BoolOr resolves a setting as a boolean, returning def if no source has a
// value, if the resolved value is empty, or if it fails to parse. An empty
// value short circuits to def without a parse attempt.
func (r *Resolver) BoolOr(name string, def bool) bool {
	v, ok := r.src.Lookup(name)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
