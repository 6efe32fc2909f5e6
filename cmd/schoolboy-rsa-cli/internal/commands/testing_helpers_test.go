//go:build unit
// +build unit

package commands

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// testKeySize keeps prime generation fast while leaving room for the demo text
const testKeySize = "512"

func newRootCommand(t *testing.T) *cobra.Command {
	t.Helper()

	rootCmd := &cobra.Command{Use: "schoolboy-rsa-cli", SilenceUsage: true, SilenceErrors: true}
	InitGlobalFlags(rootCmd)
	require.NoError(t, InitRSACommands(rootCmd))
	require.NoError(t, InitDemoCommands(rootCmd))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	return rootCmd
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	rootCmd := newRootCommand(t)
	var out bytes.Buffer
	rootCmd.SetOut(&out)

	// explicit flags later in args override the test key size
	withKeySize := append([]string{args[0], "--key-size", testKeySize}, args[1:]...)
	rootCmd.SetArgs(withKeySize)

	err := rootCmd.Execute()
	return out.String(), err
}
