// Command orientcli reorients still images using the go-orient plane
// engine: flips, quarter rotations, transpose and anti-transpose.
//
// Usage:
//
//	orientcli transform -t r90 -o out.png in.png
//	orientcli transform -t hflip -o out.bmp in.png
//	orientcli info in.png
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-orient/orient"
)

var transformNames = map[string]orient.Transform{
	"hflip":         orient.TransformHFlip,
	"vflip":         orient.TransformVFlip,
	"r90":           orient.TransformR90,
	"r180":          orient.TransformR180,
	"r270":          orient.TransformR270,
	"transpose":     orient.TransformTranspose,
	"antitranspose": orient.TransformAntiTranspose,
}

func transformNameList() string {
	names := make([]string, 0, len(transformNames))
	for name := range transformNames {
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	root := &cobra.Command{
		Use:           "orientcli",
		Short:         "Reorient raster images without rescaling",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newTransformCmd(), newInfoCmd())

	if err := root.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newTransformCmd() *cobra.Command {
	var kindName, outPath string

	cmd := &cobra.Command{
		Use:   "transform -t KIND -o OUTPUT INPUT",
		Short: "Apply a geometric transform to an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := transformNames[kindName]
			if !ok {
				return fmt.Errorf("unknown transform %q (have: %s)", kindName, transformNameList())
			}

			img, err := loadImage(args[0])
			if err != nil {
				return err
			}

			src := img.frame()
			srcFormat := src.Format
			dstFormat := srcFormat.TransformedBy(kind)

			table, err := orient.Validate(srcFormat, dstFormat)
			if err != nil {
				return err
			}

			conv := orient.NewConverter(orient.HeapAllocator{}, table)
			dst, err := conv.Convert(src)
			if err != nil {
				return err
			}

			slog.Info("transformed image",
				"transform", kind,
				"in", fmt.Sprintf("%dx%d", srcFormat.VisibleWidth, srcFormat.VisibleHeight),
				"out", fmt.Sprintf("%dx%d", dst.Format.VisibleWidth, dst.Format.VisibleHeight))

			return saveImage(outPath, dst)
		},
	}

	cmd.Flags().StringVarP(&kindName, "transform", "t", "", "transform kind: "+transformNameList())
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (.png or .bmp)")
	cobra.CheckErr(cmd.MarkFlagRequired("transform"))
	cobra.CheckErr(cmd.MarkFlagRequired("out"))
	return cmd
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info INPUT",
		Short: "Print image geometry as the engine sees it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := loadImage(args[0])
			if err != nil {
				return err
			}
			f := img.frame().Format
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %v %dx%d\n",
				args[0], f.Pixel, f.VisibleWidth, f.VisibleHeight)
			return nil
		},
	}
}
