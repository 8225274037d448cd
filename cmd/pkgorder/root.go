package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pkgorder/manifest"
	"github.com/katalvlaran/pkgorder/resolver"
)

// Exit codes for CLI commands.
const (
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (bad flags, unreadable manifest).
	ExitCodeError = 1
	// ExitCodeCycle indicates a dependency cycle blocked the query.
	ExitCodeCycle = 2
	// ExitCodeNotFound indicates the queried package is not in the manifest.
	ExitCodeNotFound = 3
)

var errManifestRequired = errors.New(`required flag "manifest" not set`)

// rootOptions holds the persistent flags shared by all subcommands.
type rootOptions struct {
	manifest string
	format   string
	verbose  bool
}

// newRootCmd builds the command tree. A fresh tree per call keeps flag state
// from leaking between invocations in tests.
func newRootCmd(version string) *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "pkgorder",
		Short: "Compute package installation orders from a dependency manifest",
		Long: `pkgorder reads a manifest of packages and their direct dependencies
and prints orders in which they can be installed, dependencies first.
It also reports root packages, dependency rankings and cycles.`,
		Version: version,
		// Errors are reported once by cobra; usage is only noise for query failures.
		SilenceUsage: true,
	}
	root.SetVersionTemplate(`{{printf "pkgorder version %s\n" .Version}}`)

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.manifest, "manifest", "m", "", "path to the JSON or YAML manifest")
	pf.StringVarP(&opts.format, "format", "f", "", "manifest format (json, yaml); default from file extension")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug details to stderr")

	root.AddCommand(
		newOrderCmd(opts),
		newDiffCmd(opts),
		newMaxCmd(opts),
		newRootsCmd(opts),
		newRankCmd(opts),
		newDepsCmd(opts),
		newDependentsCmd(opts),
		newWhyCmd(opts),
		newCyclesCmd(opts),
		newDotCmd(opts),
		newVersionCmd(),
	)

	return root
}

// loadResolver reads the manifest named by the flags into a fresh Resolver.
func loadResolver(cmd *cobra.Command, opts *rootOptions) (*resolver.Resolver, error) {
	if opts.manifest == "" {
		return nil, errManifestRequired
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	pkgs, err := readManifest(opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("manifest loaded", "path", opts.manifest, "packages", len(pkgs))

	r := resolver.NewResolver(resolver.WithLogger(logger), resolver.WithCapacity(len(pkgs)))
	r.Ingest(pkgs)

	return r, nil
}

func readManifest(opts *rootOptions) ([]resolver.Package, error) {
	if opts.format == "" {
		return manifest.Load(opts.manifest)
	}
	format, err := manifest.ParseFormat(opts.format)
	if err != nil {
		return nil, err
	}

	return manifest.LoadFormat(opts.manifest, format)
}

// exitCode maps an error to the documented exit codes.
func exitCode(err error) int {
	switch {
	case errors.Is(err, resolver.ErrCycleDetected):
		return ExitCodeCycle
	case errors.Is(err, resolver.ErrPackageNotFound):
		return ExitCodeNotFound
	default:
		return ExitCodeError
	}
}
