//go:build mage

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteCmd(t *testing.T) {
	out, err := executeCmd("go", withArgs("env", "GOMOD"), withDir(".."))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "go.mod"), out)

	_, err = executeCmd("go", withArgs("no-such-subcommand"))
	assert.ErrorContains(t, err, "error executing go")
}
