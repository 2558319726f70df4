//go:build spldebug

package math

import (
	"github.com/charmbracelet/log"

	"github.com/spaghettifunk/spl/engine/core"
)

const debugEnabled = true

// Debug builds exist to see Print output, so the logger starts at debug level.
// A later Config.Apply can still lower it.
func init() {
	core.SetLogLevel(log.DebugLevel)
}
