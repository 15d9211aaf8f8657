// Copyright (c) 2026 Server Settings Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package settings

import "os"

// EnvPrefix is prepended to a setting name to form the environment
// variable an EnvSource consults. It matches the naming convention cloud
// hosts use when injecting application settings into a process.
const EnvPrefix = "APPSETTING_"

// EnvSource resolves settings from the process environment.
type EnvSource struct {
	lookup func(string) (string, bool)
}

// EnvOption are used to configure an EnvSource.
type EnvOption func(*EnvSource)

// WithLookupEnv overrides how the EnvSource reads environment variables.
func WithLookupEnv(fn func(string) (string, bool)) EnvOption {
	return func(src *EnvSource) {
		src.lookup = fn
	}
}

// FromEnv returns a Source which resolves a setting name from the
// environment variable "APPSETTING_<name>" available to the current
// process.
func FromEnv(opts ...EnvOption) EnvSource {
	src := EnvSource{
		lookup: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(&src)
	}
	return src
}

// Lookup implements the Source interface.
func (src EnvSource) Lookup(name string) (string, bool) {
	return src.lookup(EnvPrefix + name)
}
