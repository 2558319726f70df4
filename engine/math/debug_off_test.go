//go:build !spldebug

package math

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"github.com/spaghettifunk/spl/engine/core"
)

func TestPrintSilentWithoutDebugTag(t *testing.T) {
	core.SetLogLevel(log.DebugLevel)
	t.Cleanup(func() { core.SetLogLevel(log.WarnLevel) })

	out := capturePrint(t, func() {
		Vector3i{1, 2, 3}.Print()
		Identity4[float32]().Print()
		RGBAf{}.Print()
	})
	assert.Empty(t, out)
}
