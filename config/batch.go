package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Batch is a set of named runs loaded from a YAML file:
//
//	defaults:
//	  target: 480,480,VG_LITE_BGRA8888
//	cases:
//	  - name: clear-green
//	    options:
//	      func: vg_lite_clear
//	      color: "ff00ff00"
//	      output: clear.png
//
// Every option uses the syntax accepted by Config.Set.
type Batch struct {
	Defaults map[string]string `yaml:"defaults"`
	Cases    []Case            `yaml:"cases"`
}

// Case is one named run of a Batch.
type Case struct {
	Name    string            `yaml:"name"`
	Options map[string]string `yaml:"options"`
}

// LoadBatch reads and parses a batch file.
func LoadBatch(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read batch: %w", err)
	}
	return ParseBatch(data)
}

// ParseBatch parses batch YAML.
func ParseBatch(data []byte) (*Batch, error) {
	var b Batch
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("config: parse batch: %w: %v", ErrInvalidArgument, err)
	}
	for i, c := range b.Cases {
		if c.Name == "" {
			b.Cases[i].Name = fmt.Sprintf("case-%d", i+1)
		}
	}
	return &b, nil
}

// Config builds the configuration of c: Default, then the batch defaults,
// then the case options.
func (b *Batch) Config(c Case) (Config, error) {
	cfg := Default()
	if err := apply(&cfg, b.Defaults); err != nil {
		return Config{}, fmt.Errorf("defaults: %w", err)
	}
	if err := apply(&cfg, c.Options); err != nil {
		return Config{}, fmt.Errorf("case %s: %w", c.Name, err)
	}
	return cfg, nil
}

// apply sets options in name order so results do not depend on map
// iteration.
func apply(cfg *Config, opts map[string]string) error {
	keys := make([]string, 0, len(opts))
	for k := range opts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := cfg.Set(k, opts[k]); err != nil {
			return err
		}
	}
	return nil
}
