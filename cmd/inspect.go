package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"brandlens-cli/internal/normalize"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [saved-response.json]",
	Short: "Resolve a saved agent payload and show its structure",
	Long: `Unwraps stringified and markdown-fenced JSON in a saved agent response
body ('-' for stdin) and prints the resolved value with a shape summary.
Useful when the extractor reports that no brand records were found.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := readBody(args[0])
		if err != nil {
			return err
		}

		resolved := normalize.Resolve(string(body))
		fmt.Fprintf(os.Stderr, "Shape: %s\n", normalize.DescribeShape(resolved))

		output, err := json.MarshalIndent(resolved, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(output))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
