package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"codetune/internal/miner"
	"codetune/internal/parser"
	"codetune/internal/progress"
	"codetune/internal/walker"
)

var parseCmd = &cobra.Command{
	Use:   "parse <path>",
	Short: "Mine a source file or directory for training examples",
	Long: `Walks the syntax tree of a JavaScript/TypeScript source file and
prints one quoted CSV line per generated prompt/completion pair to stdout,
ready to be merged into the dataset file. Given a directory, mines its
immediate .js/.ts entries (non-recursive), one file at a time.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringSlice("include", nil, "glob patterns to include in directory mode (overrides config)")
	parseCmd.Flags().StringSlice("exclude", nil, "glob patterns to exclude in directory mode (overrides config)")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	path := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	include, _ := cmd.Flags().GetStringSlice("include")
	if len(include) == 0 {
		include = cfg.Include
	}
	exclude, _ := cmd.Flags().GetStringSlice("exclude")
	if len(exclude) == 0 {
		exclude = cfg.Exclude
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("inspecting %s: %w", path, err)
	}

	p := parser.New()
	defer p.Close()

	if !info.IsDir() {
		examples, err := miner.MineFile(ctx, p, path)
		if err != nil {
			return err
		}
		debugf("Mined %d examples from %s", len(examples), path)
		return miner.WriteQuoted(os.Stdout, examples)
	}

	files, err := walker.List(path, include, exclude)
	if err != nil {
		return err
	}
	debugf("Found %d minable files in %s", len(files), path)

	reporter := progress.NewReporter()
	reporter.Start(len(files))

	// Files are mined sequentially, one pipeline per file.
	for i, f := range files {
		reporter.Update(i+1, f.Name)
		examples, err := miner.MineFile(ctx, p, f.Path)
		if err != nil {
			return err
		}
		if err := miner.WriteQuoted(os.Stdout, examples); err != nil {
			return err
		}
	}
	reporter.Finish()

	return nil
}
