package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pkgorder/export"
	"github.com/katalvlaran/pkgorder/resolver"
)

func newOrderCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "order [PACKAGE]",
		Short: "Print the installation order of a package, or of all packages",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadResolver(cmd, opts)
			if err != nil {
				return err
			}

			var order []string
			if len(args) == 1 {
				order, err = r.InstallationOrder(args[0])
			} else {
				order, err = r.InstallationOrderForAllPackages()
			}
			if err != nil {
				return err
			}

			return export.WriteOrder(cmd.OutOrStdout(), order)
		},
	}
}

func newDiffCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "diff NEW INSTALLED",
		Short: "Print what NEW still needs when INSTALLED is already installed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadResolver(cmd, opts)
			if err != nil {
				return err
			}
			order, err := r.ToInstall(args[0], args[1])
			if err != nil {
				return err
			}

			return export.WriteOrder(cmd.OutOrStdout(), order)
		},
	}
}

func newMaxCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "max",
		Short: "Print the root package with the most dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := loadResolver(cmd, opts)
			if err != nil {
				return err
			}
			pkg, err := r.PackageWithMaxDependencies()
			if err != nil {
				return err
			}
			if pkg == "" {
				fmt.Fprintln(cmd.ErrOrStderr(), "no root packages")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), pkg)

			return nil
		},
	}
}

func newRootsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "roots",
		Short: "List packages that nothing depends on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := loadResolver(cmd, opts)
			if err != nil {
				return err
			}

			return export.WriteList(cmd.OutOrStdout(), r.RootPackages())
		},
	}
}

func newRankCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rank",
		Short: "Rank packages by number of transitive dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := loadResolver(cmd, opts)
			if err != nil {
				return err
			}
			ranks, err := r.RankByDependencies()
			if err != nil {
				return err
			}
			export.RankingTable(cmd.OutOrStdout(), ranks)

			return nil
		},
	}
}

// closureFlags narrows the deps, dependents and why queries.
type closureFlags struct {
	depth   int
	exclude []string
}

func (f *closureFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.depth, "depth", "d", 0, "maximum number of edges to follow (0 = unlimited)")
	cmd.Flags().StringSliceVarP(&f.exclude, "exclude", "x", nil, "packages to leave out, with everything reachable only through them")
}

func (f *closureFlags) options(cmd *cobra.Command) []resolver.QueryOption {
	return []resolver.QueryOption{
		resolver.WithContext(cmd.Context()),
		resolver.WithDepth(f.depth),
		resolver.WithExclude(f.exclude...),
	}
}

func newDepsCmd(opts *rootOptions) *cobra.Command {
	flags := &closureFlags{}
	cmd := &cobra.Command{
		Use:   "deps PACKAGE",
		Short: "List the transitive dependencies of a package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadResolver(cmd, opts)
			if err != nil {
				return err
			}
			deps, err := r.Dependencies(args[0], flags.options(cmd)...)
			if err != nil {
				return err
			}

			return export.WriteList(cmd.OutOrStdout(), deps)
		},
	}
	flags.register(cmd)

	return cmd
}

func newDependentsCmd(opts *rootOptions) *cobra.Command {
	flags := &closureFlags{}
	cmd := &cobra.Command{
		Use:   "dependents PACKAGE",
		Short: "List the packages affected by removing a package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadResolver(cmd, opts)
			if err != nil {
				return err
			}
			users, err := r.Dependents(args[0], flags.options(cmd)...)
			if err != nil {
				return err
			}

			return export.WriteList(cmd.OutOrStdout(), users)
		},
	}
	flags.register(cmd)

	return cmd
}

func newWhyCmd(opts *rootOptions) *cobra.Command {
	flags := &closureFlags{}
	cmd := &cobra.Command{
		Use:   "why PACKAGE DEPENDENCY",
		Short: "Print the shortest chain through which PACKAGE needs DEPENDENCY",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadResolver(cmd, opts)
			if err != nil {
				return err
			}
			chain, err := r.Why(args[0], args[1], flags.options(cmd)...)
			if err != nil {
				return err
			}

			return export.WriteChain(cmd.OutOrStdout(), chain)
		},
	}
	flags.register(cmd)

	return cmd
}

func newCyclesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cycles",
		Short: "List dependency cycles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := loadResolver(cmd, opts)
			if err != nil {
				return err
			}
			cycles, err := r.Cycles()
			if err != nil {
				return err
			}
			if len(cycles) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "no cycles")
				return nil
			}

			return export.WriteCycles(cmd.OutOrStdout(), cycles)
		},
	}
}

func newDotCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dot",
		Short: "Print the dependency graph in Graphviz DOT format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := loadResolver(cmd, opts)
			if err != nil {
				return err
			}

			return export.DOT(cmd.OutOrStdout(), r.Graph())
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of pkgorder",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pkgorder version %s\n", cmd.Root().Version)
		},
	}
}
