package commands

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/loomgen/loom/config"
	"github.com/loomgen/loom/errors"
	"github.com/loomgen/loom/gen"
	"github.com/loomgen/loom/generators/dataclass"
	"github.com/loomgen/loom/generators/overrides"
	"github.com/loomgen/loom/logger"
	"github.com/loomgen/loom/meta"
	"github.com/loomgen/loom/unitfile"
)

var (
	generateConfigPath string
	generateOutputDir  string
	generateOnly       []string
)

// GenerateCmd represents the generate command
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run configured generators over the unit files",
	Long: `Run all configured generators over the project's unit description files.

For every annotated declaration the matching generator reconstructs its
options from the annotation constants and renders a companion source file.
Output paths are derived from the unit path and the generator name, e.g.
lib/address.dart generated by dataclass becomes lib/address.dataclass.g.dart.

Examples:
  loom generate                       # Use loom.toml in the current directory
  loom generate -c tools/loom.toml    # Explicit config file
  loom generate -g dataclass          # Run a single generator
  loom generate -o build/gen          # Override the output root`,
	RunE: runGenerate,
}

func init() {
	GenerateCmd.Flags().StringVarP(&generateConfigPath, "config", "c", "", "Config file (default: loom.toml in the working directory)")
	GenerateCmd.Flags().StringVarP(&generateOutputDir, "output", "o", "", "Output root (default: from config)")
	GenerateCmd.Flags().StringSliceVarP(&generateOnly, "generator", "g", nil, "Generators to run (default: from config, else all)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	report, err := generateOnce(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	printReport(report)
	if !report.OK() {
		return errors.Newf("generation finished with %d failed declarations", len(report.Errors))
	}
	return nil
}

// loadConfig resolves the session configuration, applying command line
// overrides on top of the file values.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if generateConfigPath != "" {
		cfg, err = config.LoadFromFile(generateConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if generateOutputDir != "" {
		cfg.OutputDir = generateOutputDir
	}
	if len(generateOnly) > 0 {
		cfg.Generators = generateOnly
	}
	return cfg, nil
}

// generateOnce loads all units and runs one batch.
func generateOnce(ctx context.Context, cfg *config.Config) (*gen.Report, error) {
	log := logger.Named("generate")

	units, err := unitfile.LoadGlob(cfg.Units)
	if err != nil {
		return nil, err
	}
	if len(units) == 0 {
		log.Warnw("no unit files matched", logger.FieldCount, len(cfg.Units))
	}
	log.Infow("loaded units", logger.FieldCount, len(units))

	generators, err := selectGenerators(cfg.Generators)
	if err != nil {
		return nil, err
	}

	runner, err := gen.NewRunner(generators, &gen.DiskWriter{Root: cfg.OutputDir},
		gen.WithParallelism(cfg.Parallelism))
	if err != nil {
		return nil, err
	}
	return runner.Run(ctx, units)
}

// selectGenerators builds the converter registry and instantiates the
// requested generators. An empty selection means all of them.
func selectGenerators(names []string) ([]gen.Generator, error) {
	b := meta.NewBuilder()
	meta.Register(b, dataclass.OptionsConverter)
	meta.Register(b, overrides.OptionsConverter)
	meta.Register(b, overrides.SignatureConverter)
	meta.Register(b, overrides.ExtraConverter)
	registry := b.Build()

	available := []gen.Generator{
		dataclass.New(registry),
		overrides.New(registry),
	}
	if len(names) == 0 {
		return available, nil
	}

	byName := make(map[string]gen.Generator, len(available))
	for _, g := range available {
		byName[g.Name()] = g
	}
	var selected []gen.Generator
	for _, name := range names {
		g, ok := byName[name]
		if !ok {
			return nil, errors.Newf("unknown generator %q", name)
		}
		selected = append(selected, g)
	}
	return selected, nil
}

// printReport renders the batch summary for a human.
func printReport(report *gen.Report) {
	for _, path := range report.Written {
		pterm.Success.Printf("Generated %s\n", path)
	}
	for _, path := range report.Skipped {
		pterm.Debug.Printf("No annotated declarations in %s\n", path)
	}
	for _, err := range report.Errors {
		pterm.Error.Printf("%v\n", err)
	}
	pterm.Println()
	pterm.Info.Printf("%d generated, %d skipped, %d failed\n",
		len(report.Written), len(report.Skipped), len(report.Errors))
}
