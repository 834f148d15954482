package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mgpai22/srtparse/internal/subtitle"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [subtitle_file...]",
	Short: "Validate SRT files",
	Long: `Validate one or more SRT files.

For each file the first syntax error is reported with its line number.
Files that parse are also checked for timing and numbering problems
(end before start, overlapping items, non-increasing indexes); those are
reported as warnings and do not fail the check.

Examples:
  srtparse check movie.srt
  srtparse check *.srt --no-overlap
  srtparse check movie.srt -o json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().
		Bool("no-overlap", false, "Do not report overlapping items")
}

func runCheck(cmd *cobra.Command, args []string) error {
	opts := subtitle.CheckOptions{Overlap: cfg.Check.Overlap}
	if noOverlap, _ := cmd.Flags().GetBool("no-overlap"); noOverlap {
		opts.Overlap = false
	}

	reports := checkFiles(args, opts)

	failed := 0
	for _, r := range reports {
		if r.Error != nil {
			failed++
		}
	}
	logger.Infow("Checked subtitles", "files", len(reports), "failed", failed)

	if err := writeReports(cmd.OutOrStdout(), cfg.Output, reports); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to parse", failed, len(reports))
	}
	return nil
}

func checkFiles(paths []string, opts subtitle.CheckOptions) []jsonReport {
	reports := make([]jsonReport, 0, len(paths))
	for _, path := range paths {
		file, err := subtitle.Open(path)
		if err != nil {
			logger.Debugw("Parse failed", "path", path, "error", err)
			reports = append(reports, reportFromError(path, err))
			continue
		}

		report := jsonReport{File: path, Items: len(file.Items())}
		for _, issue := range subtitle.Check(file.Items(), opts) {
			report.Issues = append(report.Issues, jsonIssue{
				Kind:    string(issue.Kind),
				Index:   issue.Index,
				Message: issue.Message,
			})
		}
		reports = append(reports, report)
	}
	return reports
}

func writeReports(w io.Writer, format string, reports []jsonReport) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}

	for _, r := range reports {
		if r.Error != nil {
			if _, err := fmt.Fprintf(w, "FAIL %s: %s\n", r.File, r.Error.Message); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(
			w,
			"ok   %s: %d items, %d warnings\n",
			r.File,
			r.Items,
			len(r.Issues),
		); err != nil {
			return err
		}
		for _, issue := range r.Issues {
			if _, err := fmt.Fprintf(
				w,
				"     warning #%d (%s): %s\n",
				issue.Index,
				issue.Kind,
				issue.Message,
			); err != nil {
				return err
			}
		}
	}
	return nil
}
