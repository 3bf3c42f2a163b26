package cmd

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/pixfmt/qoi"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode <input> <output.qoi>",
	Short: "Encode an image file as QOI",
	Long: `Encode reads an image in any registered format (PNG out of the box)
and writes it as a QOI stream.

Example:
  qoi encode picture.png picture.qoi`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer in.Close()
		m, _, err := image.Decode(in)
		if err != nil {
			return fmt.Errorf("decoding %s: %w", args[0], err)
		}
		out, err := os.Create(args[1])
		if err != nil {
			return err
		}
		if err := qoi.EncodeImage(out, m); err != nil {
			out.Close()
			return fmt.Errorf("encoding %s: %w", args[1], err)
		}
		return out.Close()
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}
