package cli

import (
	"bytes"
	"strings"

	"github.com/spf13/cobra"
)

// ExecuteCommand runs a command and returns its output
func ExecuteCommand(root *cobra.Command, args ...string) (output string, err error) {
	_, output, err = ExecuteCommandC(root, "", args...)
	return output, err
}

// ExecuteCommandWithInput runs a command with input as its stdin
func ExecuteCommandWithInput(root *cobra.Command, input string, args ...string) (output string, err error) {
	_, output, err = ExecuteCommandC(root, input, args...)
	return output, err
}

// ExecuteCommandC runs a command and returns the command, its output, and any error
func ExecuteCommandC(root *cobra.Command, input string, args ...string) (c *cobra.Command, output string, err error) {
	buf := new(bytes.Buffer)
	root.SetIn(strings.NewReader(input))
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	c, err = root.ExecuteC()

	return c, buf.String(), err
}
