// Package output prints launcher diagnostics.
package output

import (
	"fmt"
	"os"

	"github.com/jwalton/go-supportscolor"
)

var (
	red   = "\033[31m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stderr().SupportsColor {
		red, reset = "", ""
	}
}

// Error writes a diagnostic to stderr, prefixed with the tool's invocation
// name the way shell utilities do.
func Error(tool string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %serror:%s %v\n", tool, red, reset, err)
}
