package cmd

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/mj1618/axkit/ax"
	"github.com/mj1618/axkit/internal/logging"
	"github.com/mj1618/axkit/internal/model"
	"github.com/mj1618/axkit/internal/platform"
	"github.com/spf13/cobra"
)

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Capture a screenshot of an element",
	Long: `Capture a screenshot of the screen area covered by an element's AXPosition
and AXSize. With --annotate, the element's descendants are outlined and
labelled with the IDs that ` + "`tree`" + ` prints for the same target.

Requires Screen Recording permission.

Examples:
  axkit capture --app TextEdit --path AXWindows[0] --output window.png
  axkit capture --frontmost --path AXWindows[0] --annotate --depth 4`,
	Args: cobra.NoArgs,
	RunE: runCapture,
}

func init() {
	rootCmd.AddCommand(captureCmd)
	addTargetFlags(captureCmd)
	captureCmd.Flags().String("output", "", "Output file path (default: stdout as base64)")
	captureCmd.Flags().String("image-format", "png", "Image format: png, jpg")
	captureCmd.Flags().Int("quality", 80, "JPEG quality 1-100")
	captureCmd.Flags().Float64("scale", 1.0, "Scale factor 0.1-1.0")
	captureCmd.Flags().Bool("annotate", false, "Outline and label descendant elements")
	captureCmd.Flags().String("label", "id", "Annotation label: id, role")
	captureCmd.Flags().Int("depth", 0, "Max depth of annotated elements (0 = unlimited)")
	captureCmd.Flags().String("roles", "", "Only annotate these roles (comma-separated)")
}

// elementFrame returns el's frame in screen points.
func elementFrame(el *ax.Element) (platform.Bounds, error) {
	pos, err := el.Get(ax.AttrPosition)
	if err != nil {
		return platform.Bounds{}, fmt.Errorf("read %s: %w", ax.AttrPosition, err)
	}
	size, err := el.Get(ax.AttrSize)
	if err != nil {
		return platform.Bounds{}, fmt.Errorf("read %s: %w", ax.AttrSize, err)
	}
	b := model.Bounds(pos, size)
	return platform.Bounds{X: b[0], Y: b[1], Width: b[2], Height: b[3]}, nil
}

func encodeImage(w io.Writer, img image.Image, format string, quality int) error {
	switch format {
	case "png":
		return png.Encode(w, img)
	case "jpg", "jpeg":
		if quality < 1 || quality > 100 {
			quality = 80
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	}
	return fmt.Errorf("unsupported image format: %s (use png or jpg)", format)
}

func runCapture(cmd *cobra.Command, args []string) error {
	outPath, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("image-format")
	quality, _ := cmd.Flags().GetInt("quality")
	scale, _ := cmd.Flags().GetFloat64("scale")
	annotate, _ := cmd.Flags().GetBool("annotate")
	labelStr, _ := cmd.Flags().GetString("label")

	if format != "png" && format != "jpg" && format != "jpeg" {
		return fmt.Errorf("unsupported image format: %s (use png or jpg)", format)
	}
	mode, err := ParseLabelMode(labelStr)
	if err != nil {
		return err
	}
	treeOpts, err := getTreeOptions(cmd)
	if err != nil {
		return err
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	if provider.Screenshotter == nil {
		return fmt.Errorf("screen capture not supported on this platform")
	}
	_, el, err := resolveTarget(cmd)
	if err != nil {
		return err
	}
	frame, err := elementFrame(el)
	if err != nil {
		return err
	}

	img, err := provider.Screenshotter.CaptureRegion(frame)
	if err != nil {
		return err
	}
	logging.Debug("captured", "element", el.String(), "frame", frame, "pixels", img.Bounds().Size())

	if annotate {
		elements, err := model.Tree(el, treeOpts)
		if err != nil {
			return err
		}
		region := [4]int{frame.X, frame.Y, frame.Width, frame.Height}
		img = AnnotateCapture(img, model.FlattenElements(elements), region, mode)
	}
	img = ScaleImage(img, scale)

	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w := bufio.NewWriter(f)
		if err := encodeImage(w, img, format, quality); err != nil {
			return err
		}
		return w.Flush()
	}

	// Default: write to stdout as base64 for easy agent consumption
	encoder := base64.NewEncoder(base64.StdEncoding, cmd.OutOrStdout())
	if err := encodeImage(encoder, img, format, quality); err != nil {
		return err
	}
	if err := encoder.Close(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}
