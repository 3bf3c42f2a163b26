package cmd

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/pixfmt/qoi"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode <input.qoi> <output.png>",
	Short: "Decode a QOI file to PNG",
	Long: `Decode reads a QOI stream and writes the image as PNG.

Example:
  qoi decode picture.qoi picture.png`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		img, err := qoi.Decode(data)
		if err != nil {
			return fmt.Errorf("decoding %s: %w", args[0], err)
		}
		out, err := os.Create(args[1])
		if err != nil {
			return err
		}
		if err := png.Encode(out, img); err != nil {
			out.Close()
			return fmt.Errorf("encoding %s: %w", args[1], err)
		}
		return out.Close()
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
