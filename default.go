// Copyright (c) 2026 Server Settings Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package settings

import (
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
)

var defaultResolver atomic.Pointer[Resolver]

// Default returns the process-wide Resolver. Unless replaced via
// SetDefault, it resolves through the canonical source chain: the home
// directory settings file, the settings file next to the binary, the
// platform configuration store and, lastly, the environment.
func Default() *Resolver {
	r := defaultResolver.Load()
	if r != nil {
		return r
	}

	r = New(Chain(
		FileInHome(ProgramName()),
		FileNextToBinary(),
		FromPlatform(),
		FromEnv(),
	))
	if defaultResolver.CompareAndSwap(nil, r) {
		return r
	}
	return defaultResolver.Load()
}

// SetDefault replaces the process-wide Resolver. It is meant for tests
// and bootstrap code; call it before anything resolves through Default.
func SetDefault(r *Resolver) {
	defaultResolver.Store(r)
}

// ProgramName returns the base name of the running binary without its
// file extension. It is the program identity the default chain uses for
// the home directory settings file.
func ProgramName() string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return "settings"
	}
	base := filepath.Base(os.Args[0])
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// String resolves a setting through the Default resolver.
func String(name string) (string, error) {
	return Default().String(name)
}

// StringOr resolves a setting through the Default resolver.
func StringOr(name, def string) string {
	return Default().StringOr(name, def)
}

// Int resolves a setting through the Default resolver.
func Int(name string) (int, error) {
	return Default().Int(name)
}

// IntOr resolves a setting through the Default resolver.
func IntOr(name string, def int) int {
	return Default().IntOr(name, def)
}

// Bool resolves a setting through the Default resolver.
func Bool(name string) (bool, error) {
	return Default().Bool(name)
}

// BoolOr resolves a setting through the Default resolver.
func BoolOr(name string, def bool) bool {
	return Default().BoolOr(name, def)
}

// Unmarshal populates v through the Default resolver.
func Unmarshal(v any) error {
	return Default().Unmarshal(v)
}
