package model

import "gopkg.in/yaml.v3"

// LoadRerankConfigYAML decodes a RerankConfig from YAML (e.g. a file the
// caller loads at startup) and fills any field the document omits with
// DefaultRerankConfig's value via WithDefaults. FuzzyFalloff and
// FamousMarks are never part of the YAML document — callers wire those in
// code after loading.
func LoadRerankConfigYAML(data []byte) (RerankConfig, error) {
	var cfg RerankConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RerankConfig{}, err
	}
	return cfg.WithDefaults(), nil
}
