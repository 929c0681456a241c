package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sorotlabs/sorot/internal/extractor"
)

var extractCmd = &cobra.Command{
	Use:   "extract [url]",
	Short: "Extract metadata for a single video URL",
	Long: `Extracts metadata for one video URL and prints it as JSON.

Example:
  sorot extract https://www.tiktok.com/@user/video/1234567890123456789
  sorot extract --transcript --language en https://vm.tiktok.com/abc123/`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		defer logger.Sync()

		includeThumbnails, _ := cmd.Flags().GetBool("thumbnail-analysis")
		includeTranscript, _ := cmd.Flags().GetBool("transcript")
		language, _ := cmd.Flags().GetString("language")
		outputPath, _ := cmd.Flags().GetString("output")

		ctx := cmd.Context()
		svc, _ := buildServices(ctx, settings, logger)

		metadata, err := svc.Extract(ctx, args[0], extractor.Options{
			IncludeThumbnailAnalysis: includeThumbnails,
			IncludeTranscript:        includeTranscript,
			PreferredLanguage:        language,
		})
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(metadata, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode metadata: %w", err)
		}

		if outputPath != "" {
			if err := os.WriteFile(outputPath, append(out, '\n'), 0o644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			logger.Infow("Metadata written", "path", outputPath)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().
		Bool("thumbnail-analysis", true, "Analyze the video thumbnail with AI")
	extractCmd.Flags().
		Bool("transcript", false, "Extract the video transcript")
	extractCmd.Flags().
		StringP("language", "l", "", "Preferred transcript language (e.g., id, en)")
	extractCmd.Flags().
		StringP("output", "o", "", "Write JSON to a file instead of stdout")
}
