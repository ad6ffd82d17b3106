package hestia

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	hestiaclient "github.com/hestia-ai/hestia"
	"github.com/hestia-ai/hestia/pkg/format"
	"github.com/hestia-ai/hestia/pkg/search"
	"github.com/hestia-ai/hestia/pkg/types"
)

var (
	queryLimit        int
	queryAge          string
	queryStyle        string
	queryTemporal     string
	querySource       string
	queryRetrieveOnly bool
)

var queryCmd = &cobra.Command{
	Use:   "query [question]",
	Short: "Ask a parenting question against the knowledge graph",
	Long: `Query retrieves the most relevant advice entries for a question, prints
them to the terminal, and synthesizes a final answer with the language
model. Use --retrieve-only to skip synthesis.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().IntVar(&queryLimit, "limit", 5, "maximum number of advice entries to retrieve")
	queryCmd.Flags().StringVar(&queryAge, "age", "", "filter by age group (e.g. \"2-3 years\")")
	queryCmd.Flags().StringVar(&queryStyle, "style", "", "filter by guidance style")
	queryCmd.Flags().StringVar(&queryTemporal, "context", "", "filter by temporal context")
	queryCmd.Flags().StringVar(&querySource, "source", "", "filter by source type")
	queryCmd.Flags().BoolVar(&queryRetrieveOnly, "retrieve-only", false, "print retrieved advice without synthesizing an answer")

	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, parquetHandler := buildLogger(cfg)
	if parquetHandler != nil {
		defer parquetHandler.Flush()
	}

	client, err := buildAssistant(cfg, log)
	if err != nil {
		return err
	}
	ctx := context.WithValue(cmd.Context(), types.ContextKeyRequestSource, "cli")
	defer client.Close(ctx)

	query := strings.Join(args, " ")
	opts := &hestiaclient.RetrieveOptions{
		Limit: queryLimit,
		Filters: search.Filters{
			Age:             queryAge,
			GuidanceStyle:   queryStyle,
			TemporalContext: queryTemporal,
			SourceType:      querySource,
		},
	}

	results, err := client.Retrieve(ctx, query, opts)
	if err != nil {
		return fmt.Errorf("retrieval failed: %w", err)
	}

	format.Console(os.Stdout, results)

	if queryRetrieveOnly {
		return nil
	}

	answer, err := client.SynthesizeFrom(ctx, results, query)
	if err != nil {
		return fmt.Errorf("synthesis failed: %w", err)
	}

	fmt.Println("\nFinal Answer:\n" + strings.Repeat("=", 40))
	fmt.Println(answer)
	return nil
}
