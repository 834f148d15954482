package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mgpai22/srtparse/internal/media"
	"github.com/mgpai22/srtparse/internal/subtitle"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract [video_file]",
	Short: "Extract and parse an embedded subtitle stream from a video",
	Long: `Extract a subtitle stream from a video container with ffmpeg,
convert it to SRT and parse it.

The ffmpeg binary is taken from --ffmpeg, the ffmpeg_path config key,
SRTPARSE_FFMPEG_PATH, or PATH, in that order.

Examples:
  srtparse extract movie.mkv
  srtparse extract movie.mkv --stream 1 -o json
  srtparse extract movie.mkv --save movie.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().
		IntP("stream", "s", 0, "Subtitle stream number (0 = first subtitle stream)")
	extractCmd.Flags().
		String("ffmpeg", "", "Path to the ffmpeg binary")
	extractCmd.Flags().
		String("save", "", "Also write the extracted SRT text to this path")
}

func runExtract(cmd *cobra.Command, args []string) error {
	videoPath := args[0]

	stream, _ := cmd.Flags().GetInt("stream")
	ffmpegPath, _ := cmd.Flags().GetString("ffmpeg")
	savePath, _ := cmd.Flags().GetString("save")
	if ffmpegPath == "" {
		ffmpegPath = cfg.FFmpegPath
	}

	logger.Infow("Extracting subtitles",
		"video", videoPath,
		"stream", stream,
	)

	var extractor media.Extractor = media.NewExtractor(ffmpegPath)

	ctx := context.Background()
	text, err := extractor.ExtractSRT(ctx, videoPath, stream)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if savePath != "" {
		if err := os.WriteFile(savePath, []byte(text), 0644); err != nil {
			return fmt.Errorf("failed to save extracted subtitles: %w", err)
		}
		logger.Infow("Saved extracted subtitles", "path", savePath)
	}

	file, err := subtitle.ReadString(text)
	if err != nil {
		return err
	}

	items := file.Items()
	logger.Infow("Parsed subtitles", "video", videoPath, "items", len(items))

	return writeItems(cmd.OutOrStdout(), cfg.Output, items)
}
