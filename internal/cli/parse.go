package cli

import (
	"fmt"

	"github.com/mgpai22/srtparse/internal/subtitle"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [subtitle_file]",
	Short: "Parse an SRT file and print its items",
	Long: `Parse an SRT file and print every item's index, start and end time
and text. Reads standard input when the file is "-" or omitted.

Parsing stops at the first malformed block and reports its line.

Examples:
  srtparse parse movie.srt
  srtparse parse movie.srt -o json
  cat movie.srt | srtparse parse -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	path := "-"
	if len(args) == 1 {
		path = args[0]
	}

	var (
		file subtitle.File
		err  error
	)
	if path == "-" {
		logger.Debugw("Reading subtitles from stdin")
		file, err = subtitle.Read(cmd.InOrStdin())
	} else {
		logger.Debugw("Reading subtitles", "path", path)
		file, err = subtitle.Open(path)
	}
	if err != nil {
		return err
	}

	items := file.Items()
	logger.Infow("Parsed subtitles", "path", path, "items", len(items))

	if err := writeItems(cmd.OutOrStdout(), cfg.Output, items); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
