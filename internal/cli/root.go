package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/guiyumin/urlcat/internal/categorize"
	"github.com/guiyumin/urlcat/internal/config"
	"github.com/guiyumin/urlcat/internal/version"
	"github.com/spf13/cobra"
)

var (
	outputFormat string
	colorMode    string
	inputFile    string
)

var rootCmd = &cobra.Command{
	Use:   "urlcat [url...]",
	Short: "Classify social-media links by provider, resource type and ID",
	Long: `Classify social-media links by provider, resource type and ID.

URLs are taken from the arguments, from --file, or from stdin when it is
not a terminal. Nothing is fetched; only the text of each URL is inspected.

Examples:
  urlcat https://www.youtube.com/watch?v=dQw4w9WgXcQ
  urlcat -o json https://instagram.com/p/BxYz12/
  cat links.txt | urlcat -o yaml`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runClassify,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: text, json or yaml (default from config)")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "", "colorize text output: auto, always or never (default from config)")
	rootCmd.Flags().StringVarP(&inputFile, "file", "f", "", "read URLs from a file, one per line")
}

// Execute runs the root command and reports errors on stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
	}
	return err
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg := config.LoadOrDefault()
	opts, err := resolveOutput(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	urls, err := collectURLs(cmd, args)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		return cmd.Help()
	}

	results := make([]categorize.Result, len(urls))
	for i, u := range urls {
		results[i] = categorize.Classify(u)
	}
	return renderResults(cmd.OutOrStdout(), urls, results, opts)
}

// collectURLs gathers input from args, --file, or piped stdin, in that order
func collectURLs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	if inputFile != "" {
		f, err := os.Open(inputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		defer f.Close()
		return readURLs(f)
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		return nil, nil
	}
	return readURLs(in)
}

// outputOptions is the resolved combination of flags and config
type outputOptions struct {
	format string
	styled bool
}

func resolveOutput(cfg *config.Config, w io.Writer) (outputOptions, error) {
	format := orDefault(outputFormat, cfg.Output)
	switch format {
	case "text", "json", "yaml":
	default:
		return outputOptions{}, fmt.Errorf("unsupported output format: %s", format)
	}

	mode := orDefault(colorMode, cfg.Color)
	var styled bool
	switch mode {
	case "always":
		styled = true
	case "never":
		styled = false
	case "auto":
		f, ok := w.(*os.File)
		styled = ok && isTerminal(f)
	default:
		return outputOptions{}, fmt.Errorf("unsupported color mode: %s", mode)
	}
	color.NoColor = !styled

	return outputOptions{format: format, styled: styled}, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
