package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Running nex with no task must produce the same listing as nex help.
func TestBareInvocationMatchesHelp(t *testing.T) {
	color.NoColor = true

	root := rootCmd{}

	var bare, help bytes.Buffer
	renderHelp(&bare, root.Subcommands())

	for _, cmd := range root.Subcommands() {
		if hc, ok := cmd.(*helpcmd); ok {
			renderHelp(&help, hc.subcommands())
		}
	}

	require.NotEmpty(t, help.String())
	assert.Equal(t, bare.String(), help.String())
}

func TestGenAutocomplete(t *testing.T) {
	ac := genAutocomplete(rootCmd{}.Subcommands())

	for _, name := range []string{"fmt", "format", "help", "install", "lint", "test", "test-cov"} {
		_, ok := ac.Sub[name]
		assert.True(t, ok, "task %q missing from autocomplete", name)
	}

	covFlags := ac.Sub["test-cov"].Flags
	_, ok := covFlags["--html"]
	assert.True(t, ok)
}
