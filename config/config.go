// SPDX-License-Identifier: Apache-2.0

// Package config loads engine-wide settings (recursion limit, enabled
// extension functions) from a TOML file, for embedders who keep engine
// tuning in configuration rather than code.
package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/policycore/engine/eval"
	"github.com/policycore/engine/extension"
)

// FileConfig is the on-disk shape of a config file.
type FileConfig struct {
	RecursionLimit int      `toml:"recursion_limit,omitempty"`
	Extensions     []string `toml:"extensions,omitempty"`
}

// Config is the resolved, ready-to-use engine configuration: a fixed
// recursion limit and a built registry of the named extensions.
type Config struct {
	RecursionLimit int
	Registry       *extension.Registry
}

// knownExtensions maps a config file's extension name to its
// constructor. Extensions are registered process-wide at construction
// time (there are no runtime-defined extension functions), so
// this is a closed set, not a plugin registry.
var knownExtensions = map[string]func() extension.Extension{
	"ip":      extension.IPExtension,
	"decimal": extension.DecimalExtension,
}

// Load reads and parses a TOML config file at path, resolving its
// extension names into a Registry. An unknown extension name or a
// duplicate extension/function name is a load-time error, never
// deferred to evaluation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fc FileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return nil, err
	}

	return resolve(fc)
}

func resolve(fc FileConfig) (*Config, error) {
	limit := fc.RecursionLimit
	if limit <= 0 {
		limit = eval.DefaultRecursionLimit()
	}

	exts := make([]extension.Extension, 0, len(fc.Extensions))
	for _, name := range fc.Extensions {
		ctor, ok := knownExtensions[name]
		if !ok {
			return nil, unknownExtensionError(name)
		}
		exts = append(exts, ctor())
	}

	reg, err := extension.NewRegistry(exts...)
	if err != nil {
		return nil, err
	}

	return &Config{RecursionLimit: limit, Registry: reg}, nil
}

type unknownExtensionError string

func (e unknownExtensionError) Error() string { return "config: unknown extension " + string(e) }
