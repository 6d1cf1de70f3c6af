package config

import (
	"flag"
	"fmt"
)

// BindFlags registers the global ipass flags on fs and returns the config
// they populate once fs has been parsed.
//
// Flags:
//
//	-vault      vault directory
//	-scheme     encryption scheme (legacy or hardened)
//	-log-level  log level
//	-log-file   log file path
//	-c/-config  json file path with configs
func BindFlags(fs *flag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVar(&cfg.Storage.VaultDir, "vault", "", "Vault directory")
	fs.StringVar(&cfg.Crypto.Scheme, "scheme", "", "Encryption scheme: legacy or hardened")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Log file path")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	return cfg
}

// ParseFlags binds the flags on fs and parses args.
func ParseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	cfg := BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	return cfg, nil
}
