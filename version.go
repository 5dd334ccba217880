package slidefx

import _ "embed"

//go:embed VERSION
var Version string

//go:embed slidefx.toml
var DefaultConfig string
