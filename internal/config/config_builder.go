package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"

	"dario.cat/mergo"
)

// optionalOverride lets a set *int in a higher layer win even when it points
// at zero. mergo treats zero as empty and would otherwise keep the lower
// layer's value.
type optionalOverride struct{}

func (optionalOverride) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if typ != reflect.TypeFor[*int]() {
		return nil
	}
	return func(dst, src reflect.Value) error {
		if !src.IsNil() && dst.CanSet() {
			dst.Set(src)
		}
		return nil
	}
}

// configBuilder collects the layers; build merges them in priority order
// regardless of the order the with* calls were made in.
type configBuilder struct {
	defaults *StructuredConfig
	json     *StructuredConfig
	env      *StructuredConfig
	flags    *StructuredConfig
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, layer := range []*StructuredConfig{b.defaults, b.json, b.env, b.flags} {
		if layer == nil {
			continue
		}
		if err := mergo.Merge(config, layer, mergo.WithOverride, mergo.WithTransformers(optionalOverride{})); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.defaults = defaultConfig(userHome())
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg, err := parseEnv(os.Environ())
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.env = envCfg
	return b
}

func (b *configBuilder) withFlags(flags *StructuredConfig) *configBuilder {
	b.flags = flags
	return b
}

// withJSON loads the file named by the env or flag layer, flags winning.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range []*StructuredConfig{b.env, b.flags} {
		if cfg != nil && cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.json = jsonCfg
	return b
}
