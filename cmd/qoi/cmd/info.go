package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pixfmt/qoi"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <file.qoi>",
	Short: "Print the header of a QOI file",
	Long: `Info parses the 14-byte QOI header and prints its fields without
decoding the pixel stream.

Example:
  qoi info picture.qoi`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		buf := make([]byte, qoi.HeaderSize)
		n, _ := io.ReadFull(f, buf)
		header, err := qoi.DecodeHeader(buf[:n])
		if err != nil {
			return fmt.Errorf("reading header of %s: %w", args[0], err)
		}
		fmt.Printf("width:      %d\n", header.Width)
		fmt.Printf("height:     %d\n", header.Height)
		fmt.Printf("channels:   %d\n", header.Channels)
		fmt.Printf("colorspace: %s\n", header.Colorspace)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
