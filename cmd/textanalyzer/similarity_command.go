package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"textanalyzer/internal/api"
	"textanalyzer/internal/ipc"
	"textanalyzer/internal/textutil"
)

func newSimilarityCommand(ctx *commandContext) *cobra.Command {
	var file1, file2 string
	var useDaemon bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "similarity [text1] [text2]",
		Short: "Score the shared vocabulary of two texts as a percentage",
		Long: "Compare two texts given as arguments or read from --file1/--file2.\n" +
			"Comparison ignores case and punctuation other than periods.",
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text1, text2, err := resolveSimilarityInputs(file1, file2, args)
			if err != nil {
				return err
			}

			var result api.TextSimilarityResult
			if useDaemon {
				err = ctx.withClient(func(client *ipc.Client) error {
					resp, err := client.Similarity(cmd.Context(), text1, text2)
					if err != nil {
						return err
					}
					result = resp.Result
					return nil
				})
			} else {
				var scored textutil.SimilarityResult
				scored, err = textutil.Similarity(text1, text2)
				result = api.FromSimilarity(scored)
			}
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, result)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Similarity: %s%%\n", strconv.FormatFloat(result.Similarity, 'f', -1, 64))
			return nil
		},
	}

	cmd.Flags().StringVar(&file1, "file1", "", "Read the first text from a file")
	cmd.Flags().StringVar(&file2, "file2", "", "Read the second text from a file")
	cmd.Flags().BoolVar(&useDaemon, "daemon", false, "Score in the daemon over IPC")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

// resolveSimilarityInputs fills text1 then text2 from files first and
// positional arguments second. Exactly two texts must result.
func resolveSimilarityInputs(file1, file2 string, args []string) (string, string, error) {
	var texts []string
	remaining := args
	for _, path := range []string{file1, file2} {
		if strings.TrimSpace(path) == "" {
			if len(remaining) == 0 {
				continue
			}
			texts = append(texts, remaining[0])
			remaining = remaining[1:]
			continue
		}
		text, err := readTextFile(path)
		if err != nil {
			return "", "", err
		}
		texts = append(texts, text)
	}
	if len(texts) != 2 || len(remaining) > 0 {
		return "", "", errors.New("similarity needs exactly two texts (arguments or --file1/--file2)")
	}
	return texts[0], texts[1], nil
}
