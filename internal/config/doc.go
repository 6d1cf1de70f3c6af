// Package config loads, merges and validates the ipass configuration.
//
// Values come from four layers; later layers override non-zero fields of
// earlier ones:
//  1. Built-in defaults
//  2. JSON config file (path from CONFIG, -c or -config)
//  3. Environment variables
//  4. Command-line flags
//
// The entry point is [GetClientConfig], which returns the flattened,
// validated view consumed by the CLI.
package config
