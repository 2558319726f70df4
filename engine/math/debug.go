package math

import (
	"github.com/spaghettifunk/spl/engine/core"
	"github.com/spaghettifunk/spl/engine/types"
)

// debugPrint is the only operation of the package touching process wide state.
// Without the spldebug build tag debugEnabled is false and the body is dropped.
func debugPrint[T types.Scalar](name string, c []T) {
	if !debugEnabled {
		return
	}
	core.LogDebug("%s", formatComponents(name, c))
}
