package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/motionkit/internal/config"
	"github.com/san-kum/motionkit/internal/mover"
	"github.com/san-kum/motionkit/internal/physics"
	"github.com/san-kum/motionkit/internal/preset"
	"github.com/san-kum/motionkit/internal/viz"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	// Output format: table, json or yaml
	output string
	// Extra preset file
	presetFile string
	// Force json decoding of physics files
	asJSON bool
	// Preview sampling
	fps    int
	frames int
)

// main builds the motionkit command tree and exits with status 1 if the
// command fails.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "motionkit",
		Short:        "inspect physics configurations and mover state",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().StringVar(&presetFile, "presets", "", "extra preset file (yaml)")

	normalizeCmd := &cobra.Command{
		Use:   "normalize [file]",
		Short: "normalize a physics configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runNormalize,
	}
	normalizeCmd.Flags().BoolVar(&asJSON, "json", false, "decode the file as json")

	namesCmd := &cobra.Command{
		Use:   "names <name>",
		Short: "show the state keys derived from a mover name",
		Args:  cobra.ExactArgs(1),
		RunE:  runNames,
	}

	stateCmd := &cobra.Command{
		Use:   "state <scene>",
		Short: "build the initial state of a scene file",
		Args:  cobra.ExactArgs(1),
		RunE:  runState,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  runPresets,
	}

	previewCmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "plot the step response of each configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPreview,
	}
	previewCmd.Flags().BoolVar(&asJSON, "json", false, "decode the file as json")
	previewCmd.Flags().IntVar(&fps, "fps", 60, "frames per second")
	previewCmd.Flags().IntVar(&frames, "frames", 120, "number of frames to sample")

	rootCmd.AddCommand(normalizeCmd, namesCmd, stateCmd, presetsCmd, previewCmd)
	return rootCmd
}

func registry() (*preset.Registry, error) {
	if presetFile == "" {
		return preset.New(), nil
	}
	return preset.LoadFile(presetFile)
}

// resolveArgs reads the optional physics file and resolves it. No file
// means no configuration.
func resolveArgs(args []string) (*physics.Set, error) {
	reg, err := registry()
	if err != nil {
		return nil, err
	}

	var cfg physics.Config = physics.Absent{}
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, err
		}
		if asJSON || strings.EqualFold(filepath.Ext(args[0]), ".json") {
			cfg, err = physics.DecodeJSON(data)
		} else {
			cfg, err = physics.DecodeYAML(data)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
		}
	}
	return reg.Resolve(cfg)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	set, err := resolveArgs(args)
	if err != nil {
		return err
	}
	return write(cmd.OutOrStdout(), set, func() string { return viz.SetTable(set) })
}

func runNames(cmd *cobra.Command, args []string) error {
	names := mover.StateNames(args[0])
	return write(cmd.OutOrStdout(), names, func() string { return viz.NamesTable(names) })
}

func runState(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scene: %w", err)
	}

	var reg *preset.Registry
	if presetFile != "" {
		if reg, err = registry(); err != nil {
			return err
		}
	}
	scene, err := cfg.Build(reg)
	if err != nil {
		return err
	}
	for _, name := range scene.UnknownModes() {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: mover %s has unknown move mode %v\n", name, scene.State[scene.Movers[name].MoveMode])
	}

	return write(cmd.OutOrStdout(), scene.State, func() string {
		var b strings.Builder
		b.WriteString(viz.Title.Render("physics") + "\n")
		b.WriteString(viz.SetTable(scene.Physics))
		b.WriteString("\n" + viz.Title.Render("state") + "\n")
		b.WriteString(viz.BagTable(scene.State))
		return b.String()
	})
}

func runPresets(cmd *cobra.Command, args []string) error {
	reg, err := registry()
	if err != nil {
		return err
	}
	names := reg.Names()
	return write(cmd.OutOrStdout(), names, func() string {
		var b strings.Builder
		for _, name := range names {
			set, _ := reg.Lookup(name)
			fmt.Fprintf(&b, "%s\n", viz.NameStyle.Render(name))
			b.WriteString(viz.SetTable(set))
		}
		return b.String()
	})
}

func runPreview(cmd *cobra.Command, args []string) error {
	set, err := resolveArgs(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var failed []string
	set.Each(func(name string, p physics.Params) {
		samples, err := physics.StepResponse(p, fps, frames)
		if err != nil {
			failed = append(failed, fmt.Sprintf("%s: %v", name, err))
			return
		}
		fmt.Fprintln(out, viz.ResponsePlot(name, p, samples, fps))
		fmt.Fprintln(out, viz.SparklineChart(samples, 40))
		fmt.Fprintln(out, viz.Separator(80))
	})
	if len(failed) > 0 {
		return fmt.Errorf("preview failed: %s", strings.Join(failed, "; "))
	}
	return nil
}

// write prints v in the selected output format, using table for the
// human-readable form.
func write(w io.Writer, v any, table func() string) error {
	switch output {
	case "table", "":
		_, err := io.WriteString(w, table())
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format: %s", output)
	}
}
