//go:build streamhtmldebug

package assert

import "fmt"

const Enabled = true

func That(cond bool, format string, args ...any) {
	if !cond {
		panic("contract violation: " + fmt.Sprintf(format, args...))
	}
}
