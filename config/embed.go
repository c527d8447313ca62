package config

import _ "embed"

// DefaultConfigYAML is the embedded default configuration; an external
// config.yaml or GIGBOOK_* env vars override it.
//
//go:embed config.default.yaml
var DefaultConfigYAML []byte
