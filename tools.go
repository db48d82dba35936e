//go:build tools
// +build tools

package rbset

// Tools used by go:generate.

import (
	_ "golang.org/x/tools/cmd/stringer"
)
