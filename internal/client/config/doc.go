// Package config loads runtime configuration for the admin console CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend HTTP API
//	-t int      request timeout (seconds)
//	-s string   path of the persisted session file
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so the value can be
// either a string like "10s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:3000",
//	  "request_timeout": "10s",
//	  "session_file": "auth.json"
//	}
//
// There is no default API base URL: after all sources are applied,
// (*Config).Validate reports a hard error when it is still empty. The
// entrypoint surfaces that error to the user before any request is made.
package config
