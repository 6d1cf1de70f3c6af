package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig mirrors the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		LogLevel string `json:"log_level"`
		LogFile  string `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		VaultDir         string `json:"vault_dir"`
		EntryExt         string `json:"entry_ext"`
		ArchiveExt       string `json:"archive_ext"`
		SyncFile         string `json:"sync_file"`
		CompressionLevel *int   `json:"compression_level"`
	} `json:"storage,omitempty"`

	Crypto struct {
		Scheme       string `json:"scheme"`
		ArgonTime    uint32 `json:"argon_time"`
		ArgonMemory  uint32 `json:"argon_memory"`
		ArgonThreads uint8  `json:"argon_threads"`
	} `json:"crypto,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	dec := json.NewDecoder(jsonFile)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel: jsonCfg.App.LogLevel,
			LogFile:  jsonCfg.App.LogFile,
		},
		Storage: Storage{
			VaultDir:         jsonCfg.Storage.VaultDir,
			EntryExt:         jsonCfg.Storage.EntryExt,
			ArchiveExt:       jsonCfg.Storage.ArchiveExt,
			SyncFile:         jsonCfg.Storage.SyncFile,
			CompressionLevel: jsonCfg.Storage.CompressionLevel,
		},
		Crypto: Crypto{
			Scheme:       jsonCfg.Crypto.Scheme,
			ArgonTime:    jsonCfg.Crypto.ArgonTime,
			ArgonMemory:  jsonCfg.Crypto.ArgonMemory,
			ArgonThreads: jsonCfg.Crypto.ArgonThreads,
		},
	}

	return cfg, nil
}
