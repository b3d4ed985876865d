package export

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	svg "github.com/ajstarks/svgo"

	"github.com/dshills/outlayd/pkg/arrangement"
)

// SVGOptions configures the arrangement diagram's rendering.
type SVGOptions struct {
	Margin     int     // canvas margin in pixels around the virtual screen
	Scale      float64 // pixels per virtual-screen pixel; 0 means auto-fit
	MaxWidth   int     // canvas width cap used when computing an auto Scale
	MaxHeight  int     // canvas height cap used when computing an auto Scale
	ShowLabels bool
	Title      string
}

// DefaultSVGOptions returns sensible defaults for rendering an
// arrangement at desktop-diagram scale.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Margin:     40,
		MaxWidth:   1200,
		MaxHeight:  900,
		ShowLabels: true,
		Title:      "Display Arrangement",
	}
}

// palette cycles through a fixed set of colors, one per output, in the
// same "color by identity" spirit as the teacher's getNodeColor.
var palette = []string{
	"#48bb78", "#4299e1", "#f56565", "#ed8936",
	"#9f7aea", "#38b2ac", "#ecc94b", "#805ad5",
}

// ExportSVG renders arr as a scaled-down top-down diagram: the virtual
// screen as a dashed boundary, each output as a filled, labeled rectangle.
func ExportSVG(arr arrangement.Arrangement, opts SVGOptions) ([]byte, error) {
	if len(arr.Outputs) == 0 {
		return nil, fmt.Errorf("export: arrangement has no outputs")
	}
	if opts.Margin <= 0 {
		opts.Margin = 40
	}
	if opts.MaxWidth <= 0 {
		opts.MaxWidth = 1200
	}
	if opts.MaxHeight <= 0 {
		opts.MaxHeight = 900
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = autoScale(arr.VirtualScreen.W, arr.VirtualScreen.H, opts.MaxWidth, opts.MaxHeight, opts.Margin)
	}

	canvasW := int(float64(arr.VirtualScreen.W)*scale) + 2*opts.Margin
	canvasH := int(float64(arr.VirtualScreen.H)*scale) + 2*opts.Margin + 40 // header row

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(canvasW, canvasH)
	canvas.Rect(0, 0, canvasW, canvasH, "fill:#1a1a2e")

	headerY := 25
	title := opts.Title
	if title == "" {
		title = "Display Arrangement"
	}
	canvas.Text(canvasW/2, headerY, title,
		"text-anchor:middle;font-size:16px;font-weight:bold;fill:#e2e8f0;font-family:sans-serif")
	stats := fmt.Sprintf("%dx%d virtual screen | %d outputs", arr.VirtualScreen.W, arr.VirtualScreen.H, len(arr.Outputs))
	canvas.Text(canvasW/2, headerY+20, stats,
		"text-anchor:middle;font-size:11px;fill:#a0aec0;font-family:monospace")

	originY := opts.Margin + 40
	canvas.Rect(opts.Margin, originY,
		int(float64(arr.VirtualScreen.W)*scale), int(float64(arr.VirtualScreen.H)*scale),
		"fill:none;stroke:#4a5568;stroke-width:1;stroke-dasharray:4,4")

	outputs := make([]arrangement.Output, len(arr.Outputs))
	copy(outputs, arr.Outputs)
	sort.Slice(outputs, func(i, j int) bool { return outputs[i].ID < outputs[j].ID })

	for i, o := range outputs {
		x := opts.Margin + int(float64(o.Position.X)*scale)
		y := originY + int(float64(o.Position.Y)*scale)
		w := int(float64(o.Mode.Width) * scale)
		h := int(float64(o.Mode.Height) * scale)
		color := palette[i%len(palette)]

		canvas.Rect(x, y, w, h, fmt.Sprintf("fill:%s;opacity:0.75;stroke:#fff;stroke-width:2", color))

		if opts.ShowLabels {
			label := fmt.Sprintf("%s (%s)", o.ID, o.Mode.String())
			canvas.Text(x+w/2, y+h/2, label,
				"text-anchor:middle;font-size:12px;font-family:monospace;fill:#1a1a2e;font-weight:bold")
		}
	}

	canvas.End()
	return buf.Bytes(), nil
}

// SaveSVGToFile renders arr and writes it to path with 0644 permissions.
func SaveSVGToFile(arr arrangement.Arrangement, path string, opts SVGOptions) error {
	data, err := ExportSVG(arr, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// autoScale picks the largest scale that fits the virtual screen inside
// maxW x maxH once margin is subtracted on both sides.
func autoScale(vw, vh, maxW, maxH, margin int) float64 {
	availW := float64(maxW - 2*margin)
	availH := float64(maxH - 2*margin - 40)
	if vw <= 0 || vh <= 0 || availW <= 0 || availH <= 0 {
		return 1
	}
	sx := availW / float64(vw)
	sy := availH / float64(vh)
	if sx < sy {
		return sx
	}
	return sy
}
