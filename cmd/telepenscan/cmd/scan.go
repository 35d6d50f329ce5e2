package cmd

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mharwood/telepengo/internal/metrics"
	"github.com/mharwood/telepengo/internal/rasterimage"
)

var scanCmd = &cobra.Command{
	Use:   "scan <image-file> [image-file...]",
	Short: "Decode Telepen Numeric barcodes from image files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	exitCode := 0
	for _, path := range args {
		text, err := scanFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: error: %v\n", path, err)
			exitCode = 1
			continue
		}
		if text == "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: no barcode found\n", path)
			exitCode = 1
			continue
		}
		if len(args) > 1 {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", path, text)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), text)
		}
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}

func scanFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	row := rasterimage.New(img)
	text, ok := metrics.Decode(row)
	if !ok {
		slog.Debug("no decode", "path", path, "try_harder", cfg.TryHarder)
		return "", nil
	}
	return text, nil
}
