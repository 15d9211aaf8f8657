// Copyright (c) 2026 Server Settings Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package settings

import "github.com/spf13/viper"

// PlatformSource resolves settings from a viper configuration store. The
// store is treated as an opaque, externally populated collaborator: the
// source only ever reads from it.
type PlatformSource struct {
	v *viper.Viper
}

// FromPlatform returns a Source backed by the process-wide viper instance.
func FromPlatform() PlatformSource {
	return FromViper(viper.GetViper())
}

// FromViper returns a Source backed by the given viper instance.
func FromViper(v *viper.Viper) PlatformSource {
	return PlatformSource{v: v}
}

// Lookup implements the Source interface.
func (src PlatformSource) Lookup(name string) (string, bool) {
	if !src.v.IsSet(name) {
		return "", false
	}
	return src.v.GetString(name), true
}
