package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/StinkyLord/metacompose/internal/model"
	"github.com/StinkyLord/metacompose/internal/output"
	"github.com/StinkyLord/metacompose/internal/scanner"
	"github.com/StinkyLord/metacompose/internal/unit"
)

const toolVersion = "1.0.0"

var (
	flagUnitsDir   string
	flagOrigin     string
	flagBundleKind string
	flagOutput     string
	flagFormat     string
	flagWorkers    int
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "metacompose",
	Short: "Software metadata catalog composer",
	Long: `metacompose scans packaging units (unpacked packages, bundles, metadata
directories) and composes a software catalog from the metainfo and desktop
files it finds.

Every component receives a stable global identifier derived from its local ID
and a content fingerprint of the metadata that produced it, so identical
components compose to identical catalog entries across runs.`,
}

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Compose a catalog from a directory of packaging units",
	Long: `Compose scans every subdirectory of --units-dir as one packaging unit and
writes the merged catalog.

Examples:
  metacompose compose --units-dir ./units --origin fedora-42 --output catalog.json
  metacompose compose --units-dir ./units --bundle-kind flatpak --format yaml --output -`,
	RunE: runCompose,
}

func init() {
	composeCmd.Flags().StringVarP(&flagUnitsDir, "units-dir", "d", ".", "Directory whose subdirectories are scanned as packaging units")
	composeCmd.Flags().StringVar(&flagOrigin, "origin", "", "Catalog origin name (e.g. the repository suite)")
	composeCmd.Flags().StringVar(&flagBundleKind, "bundle-kind", "package", "Bundle kind of the units: package, flatpak, appimage, snap, tarball, none")
	composeCmd.Flags().StringVarP(&flagOutput, "output", "o", "catalog.json", "Output file path (use '-' for stdout)")
	composeCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "Output format: json or yaml")
	composeCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Number of units to process in parallel")
	composeCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(composeCmd)
}

// loadConfig reads the optional .metacompose.yaml from the working directory
// or the home directory. Flags always win over config values.
func loadConfig() *viper.Viper {
	v := viper.New()
	v.SetConfigName(".metacompose")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}

	v.SetDefault("format", "json")
	v.SetDefault("workers", 4)
	v.SetDefault("origin", "unknown")

	// a missing config file is fine, everything has defaults
	_ = v.ReadInConfig()
	return v
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCompose(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if flagFormat == "" {
		flagFormat = cfg.GetString("format")
	}
	if flagWorkers == 0 {
		flagWorkers = cfg.GetInt("workers")
	}
	if flagOrigin == "" {
		flagOrigin = cfg.GetString("origin")
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "metacompose",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	bundleKind := model.ParseBundleKind(flagBundleKind)
	if bundleKind == model.BundleKindUnknown && flagBundleKind != "unknown" {
		return fmt.Errorf("unsupported bundle kind %q", flagBundleKind)
	}

	absDir, err := filepath.Abs(flagUnitsDir)
	if err != nil {
		return fmt.Errorf("cannot resolve directory %q: %w", flagUnitsDir, err)
	}
	entries, err := os.ReadDir(absDir)
	if err != nil {
		return fmt.Errorf("cannot read units directory %q: %w", absDir, err)
	}

	var units []unit.Unit
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	for _, name := range names {
		u, err := unit.NewDirUnit(filepath.Join(absDir, name), bundleKind)
		if err != nil {
			return fmt.Errorf("opening unit %q: %w", name, err)
		}
		units = append(units, u)
	}
	if len(units) == 0 {
		return fmt.Errorf("no unit directories found under %q", absDir)
	}

	logger.Info("composing", "version", toolVersion, "units", len(units), "origin", flagOrigin)

	s := scanner.New(flagWorkers, logger)
	results := s.ProcessUnits(units)

	var cptTotal, hintTotal, ignored int
	for _, res := range results {
		cptTotal += res.ComponentsCount()
		hintTotal += res.HintsCount()
		if res.UnitIgnored() {
			ignored++
		}
	}
	logger.Info("composition finished",
		"components", cptTotal, "hinted-ids", hintTotal, "ignored-units", ignored)

	if err := output.WriteCatalog(results, flagOrigin, flagOutput, flagFormat); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	if flagOutput != "-" {
		logger.Info("catalog written", "path", flagOutput)
	}
	return nil
}
