package math

import (
	"bytes"
	"os"
	"testing"

	"github.com/spaghettifunk/spl/engine/core"
)

// capturePrint runs fn with the library logger writing into a buffer.
func capturePrint(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	core.SetLogOutput(&buf)
	t.Cleanup(func() { core.SetLogOutput(os.Stderr) })
	fn()
	return buf.String()
}
