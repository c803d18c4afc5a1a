// Package builder plugs the builder generator into goa gen. Designs import
// this package for its side effects next to the builder DSL:
//
//	import (
//	    _ "goa.design/goa-builder"
//	    . "goa.design/goa-builder/dsl"
//	)
package builder

import (
	_ "goa.design/goa-builder/codegen" // Import to trigger plugin registration
)
