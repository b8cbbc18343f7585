package cli

import (
	"fmt"

	"github.com/guiyumin/urlcat/internal/categorize"
	"github.com/guiyumin/urlcat/internal/config"
	"github.com/guiyumin/urlcat/internal/urlparts"
	"github.com/spf13/cobra"
)

// explanation is the structured output of `urlcat explain`
type explanation struct {
	URL     string            `json:"url" yaml:"url"`
	Parts   urlparts.Parts    `json:"parts" yaml:"parts"`
	Matches []categorize.Info `json:"matches" yaml:"matches"`
	Result  categorize.Result `json:"result" yaml:"result"`
}

var explainCmd = &cobra.Command{
	Use:   "explain <url>",
	Short: "Show every provider that matches a URL and which one wins",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := resolveOutput(config.LoadOrDefault(), cmd.OutOrStdout())
		if err != nil {
			return err
		}

		e := explain(args[0])
		switch opts.format {
		case "json":
			return writeJSON(cmd.OutOrStdout(), e)
		case "yaml":
			return writeYAML(cmd.OutOrStdout(), e)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "path segments: %q\n", e.Parts.PathSegments)
		fmt.Fprintf(w, "query params:  %v\n", e.Parts.QueryParams)
		if len(e.Matches) == 0 {
			fmt.Fprintln(w, "matches:       none")
		} else {
			fmt.Fprintln(w, "matches:")
			for i, m := range e.Matches {
				marker := " "
				if i == len(e.Matches)-1 {
					marker = "*"
				}
				fmt.Fprintf(w, "  %s #%d %s/%s\n", marker, m.Priority, m.Name, m.ResourceType)
			}
		}
		fmt.Fprintln(w)
		fmt.Fprint(w, formatResult(e.URL, e.Result, opts.styled))
		return nil
	},
}

func explain(raw string) explanation {
	return explanation{
		URL:     raw,
		Parts:   urlparts.Decompose(raw),
		Matches: categorize.DescribeMatches(raw),
		Result:  categorize.Classify(raw),
	}
}

func init() {
	rootCmd.AddCommand(explainCmd)
}
