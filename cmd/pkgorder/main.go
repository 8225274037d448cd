// Command pkgorder prints package installation orders computed from a
// JSON or YAML dependency manifest.
package main

import (
	"io"
	"os"
)

// version can be set during build with -ldflags
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(version)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		return exitCode(err)
	}

	return ExitCodeSuccess
}
