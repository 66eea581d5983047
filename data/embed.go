// Package data embeds the default configuration shipped with the binaries.
package data

import _ "embed"

//go:embed numerize.yaml
var DefaultConfig []byte
