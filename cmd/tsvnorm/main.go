package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/bjaus/tsvnorm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// outputTimestamp is the yyyyMMddHHmm prefix of generated output names.
const outputTimestamp = "200601021504"

const defaultConfigFile = ".tsvnorm.yaml"

var (
	// Global flags
	verbose    bool
	configPath string
	outputPath string

	cfg    config
	logger *zap.Logger
)

// config holds the optional .tsvnorm.yaml settings. Flags win over
// config values.
type config struct {
	// OutputDir is where generated output files land. Default: cwd.
	OutputDir string `yaml:"output_dir,omitempty"`
	// Verbose enables debug logging without the -v flag.
	Verbose bool `yaml:"verbose,omitempty"`
}

// loadConfig reads a yaml config file. A missing file is not an error.
func loadConfig(path string) (config, error) {
	var c config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

// defaultOutputName builds the timestamped output filename.
func defaultOutputName(dir string, now time.Time) string {
	return filepath.Join(dir, now.Format(outputTimestamp)+"processed.tsv")
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tsvnorm",
	Short: "tsvnorm - normalize or group tab-separated data",
	Long: `tsvnorm converts tab-separated data between two shapes.

normalize expands cells holding colon-separated value lists into one
row per value combination (Cartesian product). group is the inverse:
it collapses 2-column key/value rows sharing a key into a single row
with colon-joined values.

The input must contain only tabs and printable ASCII. The output file
name is generated from the current time unless --output is given, and
a failed run leaves no output file behind.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig(configPath)
		if err != nil {
			return err
		}

		// Initialize logger
		zcfg := zap.NewProductionConfig()
		if verbose || cfg.Verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// normalizeCmd runs the forward transform on an input file
var normalizeCmd = &cobra.Command{
	Use:   "normalize [input-file]",
	Short: "Expand colon-delimited cells into one row per combination",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransform(cmd.OutOrStdout(), tsvnorm.Normalize, args[0])
	},
}

// groupCmd runs the inverse transform on an input file
var groupCmd = &cobra.Command{
	Use:   "group [input-file]",
	Short: "Collapse key/value rows into colon-joined value lists",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransform(cmd.OutOrStdout(), tsvnorm.Group, args[0])
	},
}

func runTransform(out io.Writer, m tsvnorm.Mode, inputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	dest := outputPath
	if dest == "" {
		dest = defaultOutputName(cfg.OutputDir, time.Now())
	}

	logger.Debug("starting run",
		zap.String("mode", m.String()),
		zap.String("input", inputPath),
		zap.String("output", dest))

	if err := tsvnorm.WriteFile(dest, m, in); err != nil {
		logger.Error("run failed",
			zap.String("mode", m.String()),
			zap.String("input", inputPath),
			zap.Error(err))
		return fmt.Errorf("%s %s: %w", m, inputPath, err)
	}

	logger.Info("run complete",
		zap.String("mode", m.String()),
		zap.String("output", dest))
	fmt.Fprintf(out, "output file: %s\n", dest)
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigFile, "path to yaml config file")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "output file path (default: timestamped name)")

	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(groupCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
