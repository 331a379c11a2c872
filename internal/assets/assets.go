package assets

import _ "embed"

// ExampleConfig is a commented promptmail.yaml listing every key with its
// default value.
//
//go:embed promptmail.example.yaml
var ExampleConfig []byte
