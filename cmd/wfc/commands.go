package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wfc/compat"
	"github.com/katalvlaran/wfc/internal/config"
	"github.com/katalvlaran/wfc/internal/driver"
)

// errUnsound is returned by check when a saved grid violates the tables.
var errUnsound = errors.New("grid violates the compatibility tables")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "wfc",
		Short:         "Wave Function Collapse over 2D and 3D grids",
		SilenceUsage:  true,
		SilenceErrors: false,
		Version:       version,
	}
	flags.register(root.PersistentFlags())

	root.AddCommand(
		newGenerateCmd(),
		newBatchCmd(),
		newWatchCmd(),
		newFixturesCmd(),
		newCheckCmd(),
		newConfigCmd(),
	)

	return root
}

func newGenerateCmd() *cobra.Command {
	var live bool
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Collapse one grid and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			defer a.close(cmd.Context())

			r, err := a.runner()
			if err != nil {
				return err
			}

			var res driver.Result
			switch {
			case live && driver.Interactive(os.Stdin) && driver.Interactive(os.Stdout):
				res, err = r.TUI(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
				fmt.Fprintln(cmd.OutOrStdout(), res.Frame)
			case live:
				r.Live = cmd.OutOrStdout()
				res, err = r.Generate(cmd.Context())
			default:
				res, err = r.Generate(cmd.Context())
				fmt.Fprintln(cmd.OutOrStdout(), res.Frame)
			}
			if res.RunID != "" {
				report(cmd, res)
			}

			return err
		},
	}
	cmd.Flags().BoolVarP(&live, "live", "l", false, "draw the grid after every step")

	return cmd
}

func newBatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch",
		Short: "Collapse --count grids concurrently with derived seeds",
		Long: `Batch runs --count independent grids, at most --workers at a time.
Grid i uses a seed derived from --seed and i, so a batch is reproducible.
With --output DIR each grid is saved as DIR/grid-NNN.json.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			defer a.close(cmd.Context())

			r, err := a.runner()
			if err != nil {
				return err
			}
			results, err := r.Batch(cmd.Context())
			for _, res := range results {
				if res.RunID != "" {
					report(cmd, res)
				}
			}

			return err
		},
	}
}

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Regenerate whenever the pattern or neighbor file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			defer a.close(cmd.Context())

			r := &driver.Runner{
				Config:  a.cfg,
				Log:     a.log,
				Metrics: a.metrics,
				Tracer:  a.tracer,
				Color:   flags.color,
			}
			out := cmd.OutOrStdout()

			return r.Watch(cmd.Context(), func(res driver.Result, err error) {
				if err != nil {
					fmt.Fprintf(out, "error: %v\n", err)
					return
				}
				fmt.Fprintf(out, "%s\n", res.Frame)
				report(cmd, res)
			})
		},
	}
}

func newFixturesCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "fixtures",
		Short: "Write the synthesized pattern table and the default neighbor table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			defer a.close(cmd.Context())

			write := func(path string, fn func(string) error) error {
				if _, err := os.Stat(path); err == nil && !force {
					fmt.Fprintf(cmd.OutOrStdout(), "kept %s\n", path)
					return nil
				} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
					return err
				}
				if err := fn(path); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
				return nil
			}

			if err = write(a.cfg.Patterns, func(p string) error {
				return compat.WritePatterns(p, compat.Synthesize(a.cfg.Dimension))
			}); err != nil {
				return err
			}
			return write(a.cfg.Neighbors, func(p string) error {
				return compat.WriteNeighbors(p, compat.DefaultNeighbors())
			})
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing files")

	return cmd
}

func newCheckCmd() *cobra.Command {
	var grid string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the fixture tables, and optionally a saved grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			defer a.close(cmd.Context())

			store, err := driver.LoadStore(a.cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d patterns, %d axes, %d neighbor groups\n",
				store.Len(), len(store.Axes()), len(store.Groups()))
			for _, as := range store.Asymmetries() {
				fmt.Fprintf(out, "asymmetric: %+v\n", as)
			}
			if grid == "" {
				return nil
			}

			res, err := driver.ReadGrid(grid)
			if err != nil {
				return err
			}
			rep, err := driver.CheckGrid(store, res)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s: %d cells, %d resolved, %d contradictions, %d regions, %d violations\n",
				grid, rep.Summary.Cells, rep.Summary.Resolved, rep.Summary.Contradictions, rep.Regions, rep.Violations)
			for _, v := range rep.First {
				fmt.Fprintf(out, "  %s\n", v)
			}
			if !rep.Sound() {
				return errUnsound
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&grid, "grid", "g", "", "grid JSON written by generate or batch")

	return cmd
}

func newConfigCmd() *cobra.Command {
	var save string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			defer a.close(cmd.Context())

			if save != "" {
				return config.Save(save, a.cfg)
			}
			data, err := config.Marshal(a.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
	cmd.Flags().StringVar(&save, "save", "", "write the configuration to this file instead")

	return cmd
}
