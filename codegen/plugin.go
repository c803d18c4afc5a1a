package codegen

import (
	"goa.design/goa/v3/codegen"
)

// Register the builder generator with goa so designs importing the plugin
// get their builders generated by goa gen.
func init() {
	codegen.RegisterPlugin("builder", "gen", nil, Generate)
}
