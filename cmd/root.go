// Package cmd is for command line interactions with the cgcfinder application
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/yumyai/cgcfinder/config"
	"github.com/yumyai/cgcfinder/logger"
	"github.com/yumyai/cgcfinder/pkg/cgc"
	"github.com/yumyai/cgcfinder/pkg/db"
	"github.com/yumyai/cgcfinder/pkg/model"
	"github.com/yumyai/cgcfinder/pkg/render"
	"github.com/yumyai/cgcfinder/pkg/stats"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const Version = "0.1.0"

// NewRootCmd builds the finder command with the serve subcommand attached.
// Every call returns fresh flags and settings.
func NewRootCmd() *cobra.Command {
	v := config.NewViper()

	rootCmd := &cobra.Command{
		Use:   "cgcfinder [flags] <annotation_file>",
		Short: "Find CAZyme Gene Clusters (CGCs) in annotated contigs",
		Long: `Find CAZyme Gene Clusters (CGCs) in annotated contigs

cgcfinder reads a tab-delimited annotation file (contig, source, category, start, end,
score, strand, phase, attributes), scans every contig for runs of signature genes
that are at most --distance unimportant genes apart, and writes:

1. --output, every cluster whose composition satisfies --siggenes
2. --filtered_output, the clusters whose consecutive genes are never more than
   --base_pair bases apart

Settings also come from CGC_* environment variables and --config.`,
		Version:      Version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				v.Set("input", args[0])
			}
			if err := setup(v); err != nil {
				return err
			}

			c, err := config.NewConfig(v)
			if err != nil {
				return err
			}
			return runFinder(cmd.Context(), c)
		},
	}

	shared := rootCmd.PersistentFlags()
	shared.String("config", "", "path to a YAML/TOML/JSON settings file")
	shared.String("log-file", "cgc_finder.log", "file the run log is appended to, empty for stderr only")
	shared.Bool("verbose", false, "log at debug level")

	flags := rootCmd.Flags()
	flags.IntP("distance", "d", 2, "unimportant genes allowed between two signature genes")
	flags.StringP("siggenes", "s", "all", fmt.Sprintf("signature genes required, one of %s", model.ModeNames()))
	flags.StringP("output", "o", "output.txt", "path of the unfiltered cluster table")
	flags.StringP("filtered_output", "f", "filtered_output.txt", "path of the base pair filtered cluster table")
	flags.IntP("base_pair", "b", 5000, "largest gap in bases allowed between consecutive genes of a filtered cluster")
	flags.String("db", "", "sqlite database the run is stored in")
	flags.String("plot", "", "path of an SVG histogram of genes per cluster")

	bindFlags(v, shared, sharedKeys)
	bindFlags(v, flags, map[string]string{
		"distance":        "distance",
		"siggenes":        "siggenes",
		"output":          "output",
		"filtered_output": "filtered_output",
		"base_pair":       "base_pair",
		"db":              "db",
		"plot":            "plot",
	})

	rootCmd.AddCommand(newServeCmd(shared))
	return rootCmd
}

// Execute runs the command line. This is called by main.main().
func Execute() error {
	return NewRootCmd().Execute()
}

// sharedKeys maps config keys to the persistent flags every command accepts.
var sharedKeys = map[string]string{
	"config":   "config",
	"log_file": "log-file",
	"verbose":  "verbose",
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}
}

// setup reads the optional settings file and starts the logger.
func setup(v *viper.Viper) error {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	level := zapcore.InfoLevel
	if v.GetBool("verbose") {
		level = zapcore.DebugLevel
	}

	var paths []string
	if logFile := v.GetString("log_file"); logFile != "" {
		paths = append(paths, logFile)
	}
	if err := logger.InitLogger(level, paths...); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	logger.Debug("Settings", zap.Any("settings", v.AllSettings()))
	return nil
}

// runFinder validates c, finds the clusters of c.Input and writes every
// requested output.
func runFinder(ctx context.Context, c config.Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	mode, err := c.Mode()
	if err != nil {
		return err
	}

	logger.Info("Start",
		zap.String("version", Version),
		zap.String("input", c.Input),
		zap.String("siggenes", mode.String()),
		zap.Int("distance", c.Distance),
		zap.Int("base_pair", c.BasePair))

	contigs, err := db.LoadAnnotationFile(c.Input)
	if err != nil {
		return err
	}

	res := cgc.Finder{Mode: mode, Distance: c.Distance, BasePair: c.BasePair}.Find(contigs)

	if err := render.WriteResult(c.Output, c.FilteredOutput, res); err != nil {
		return err
	}

	if c.DB != "" {
		if err := storeRun(ctx, c, mode, res); err != nil {
			return err
		}
	}

	if c.Plot != "" {
		if len(res.Clusters) == 0 {
			logger.Warn("No clusters, histogram skipped", zap.String("plot", c.Plot))
		} else if err := stats.WriteHistogramFile(c.Plot, res); err != nil {
			return err
		}
	}

	s := stats.Summarize(res)
	logger.Info("Done",
		zap.Int("contigs", s.Contigs),
		zap.Int("genes", s.Genes),
		zap.Int("clusters", s.Clusters),
		zap.Int("filtered", s.Filtered),
		zap.Float64("mean_genes", s.MeanGenes),
		zap.Float64("stddev_genes", s.StdDevGenes),
		zap.Float64("mean_span_bp", s.MeanSpanBP),
		zap.Int("max_gap_bp", s.MaxGapBP))
	return nil
}

func storeRun(ctx context.Context, c config.Config, mode model.SignatureMode, res cgc.Result) error {
	store, err := db.OpenClusterDB(c.DB)
	if err != nil {
		return err
	}
	defer store.Close()

	run := &model.Run{
		Input:    c.Input,
		Mode:     mode.String(),
		Distance: c.Distance,
		BasePair: c.BasePair,
	}
	if _, err := store.SaveRun(ctx, run, res); err != nil {
		return fmt.Errorf("store run in %s: %w", c.DB, err)
	}
	return nil
}
