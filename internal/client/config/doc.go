// Package config loads runtime configuration for the banking CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//  4. Environment variables (see parseEnv), which override everything.
//
// Supported flags
//
//	-a string   base URL of the banking API
//	-t int      request timeout (seconds)
//	-f string   path to the local data file
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "15s" or integer nanoseconds:
//
//	{
//	  "base_url": "http://127.0.0.1:8080/api",
//	  "request_timeout": "15s",
//	  "data_file": "digibank.db"
//	}
//
// Environment variables
//
//	BANK_API_URL    base URL of the banking API
//	BANK_TIMEOUT    request timeout (seconds)
//	BANK_DATA_FILE  path to the local data file
package config
