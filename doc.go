// Copyright (c) 2026 Server Settings Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package settings resolves configuration values from an ordered chain of sources.
//
// The package is built around the Source interface, which represents anything
// that can map a setting name to an optional string value. Sources never fail;
// a source which cannot produce a value simply reports that the value is absent,
// and the chain moves on to the next source.
//
// # Sources
//
// Four source kinds are provided:
//
//   - FileInHome: an XML settings file under the user's home directory,
//     named after the running program
//   - FileNextToBinary: an XML settings file next to the running binary
//   - FromPlatform: the process-wide viper configuration store
//   - FromEnv: environment variables under the APPSETTING_ prefix
//
// File backed sources load lazily on first lookup and cache the outcome for
// the lifetime of the process, including the "file does not exist" outcome.
// Load failures of any kind are logged and degrade to "no values"; they are
// never surfaced to callers.
//
// # Basic Usage
//
// Resolve typed values through the process-wide default resolver:
//
//	port := settings.IntOr("Port", 8080)
//	debug := settings.BoolOr("Debug", false)
//
//	apiKey, err := settings.String("ApiKey")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Or construct a resolver explicitly over a custom chain:
//
//	r := settings.New(settings.Chain(
//	    settings.FileInHome("myservice"),
//	    settings.FromEnv(),
//	))
//	retries, err := r.Int("Retries")
//
// # Defaults and Errors
//
// Getters come in pairs. The plain form fails with MissingSettingError when no
// source has a value, or with InvalidSettingFormatError when the value cannot
// be parsed as the requested type. The *Or form never fails: supplying a
// default opts out of both failure modes for that lookup.
package settings
