package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"textanalyzer/internal/api"
	"textanalyzer/internal/ipc"
	"textanalyzer/internal/logging"
	"textanalyzer/internal/textutil"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var filePath string
	var useDaemon bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "analyze [text...]",
		Short: "Count characters, words, and sentences and find the most frequent and longest words",
		Long: "Analyze text given as arguments, read from --file, or piped on stdin.\n" +
			"Words are split on single spaces, so consecutive spaces count as empty words.",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := resolveText(filePath, args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			var result api.TextAnalysisResult
			if useDaemon {
				err = ctx.withClient(func(client *ipc.Client) error {
					resp, err := client.Analyze(cmd.Context(), text)
					if err != nil {
						return err
					}
					result = resp.Result
					return nil
				})
			} else {
				ctx.logger().Debug("analyzing locally", logging.Int("text_length", len(text)))
				var analysis textutil.Analysis
				analysis, err = textutil.Analyze(text)
				result = api.FromAnalysis(analysis)
			}
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, result)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderAnalysis(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Read text from a file")
	cmd.Flags().BoolVar(&useDaemon, "daemon", false, "Run the analysis in the daemon over IPC")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func renderAnalysis(result api.TextAnalysisResult) string {
	mostFrequent := "-"
	if w := result.MostFrequentWord; w != nil {
		mostFrequent = fmt.Sprintf("%q (%d)", w.Word, w.Frequency)
	}
	longest := "-"
	if w := result.LongestWord; w != nil {
		longest = fmt.Sprintf("%q (%d)", w.Word, w.Length)
	}
	return renderTable(tableSpec{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Characters", strconv.Itoa(result.CharCount)},
			{"Words", strconv.Itoa(result.WordCount)},
			{"Sentences", strconv.Itoa(result.SentenceCount)},
			{"Most frequent word", mostFrequent},
			{"Longest word", longest},
		},
		Aligns: []columnAlignment{alignLeft, alignRight},
	})
}
