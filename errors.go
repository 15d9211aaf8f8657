// Copyright (c) 2026 Server Settings Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package settings

import "fmt"

// MissingSettingError occurs when no source has a value for a setting
// and the caller did not supply a default.
type MissingSettingError struct {
	Name string
}

// Error implements the error interface.
func (e MissingSettingError) Error() string {
	return fmt.Sprintf("no value found for setting: %s", e.Name)
}

// InvalidSettingFormatError occurs when a resolved value can not be
// parsed as the requested type and the caller did not supply a default.
type InvalidSettingFormatError struct {
	Name  string
	Value string
	Type  string
	Cause error
}

// Error implements the error interface.
func (e InvalidSettingFormatError) Error() string {
	return fmt.Sprintf("setting %s has value %q which is not a valid %s", e.Name, e.Value, e.Type)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidSettingFormatError) Unwrap() error {
	return e.Cause
}
