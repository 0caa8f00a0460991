// Package export writes heightfields to disk formats used by terrain tools.
package export

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"heightmapper/internal/core"
	"heightmapper/internal/render"
)

// ErrUnknownFormat reports a file extension with no writer.
var ErrUnknownFormat = errors.New("unknown export format")

var contourColor = color.RGBA{R: 20, G: 20, B: 24, A: 255}

// WriteRaw writes the grid as row-major little-endian uint16 samples, the
// layout game engines import as .r16 / .raw heightmaps.
func WriteRaw(w io.Writer, g *core.Grid16) error {
	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, g.Cells()); err != nil {
		return fmt.Errorf("write raw: %w", err)
	}
	return bw.Flush()
}

// Gray16 copies the grid into a 16-bit grayscale image.
func Gray16(g *core.Grid16) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, g.W, g.H))
	for i, v := range g.Cells() {
		// image.Gray16 stores samples big-endian.
		img.Pix[i*2] = byte(v >> 8)
		img.Pix[i*2+1] = byte(v)
	}
	return img
}

// WriteTIFF writes the grid as an uncompressed 16-bit grayscale TIFF.
func WriteTIFF(w io.Writer, g *core.Grid16) error {
	if err := tiff.Encode(w, Gray16(g), &tiff.Options{Compression: tiff.Uncompressed}); err != nil {
		return fmt.Errorf("write tiff: %w", err)
	}
	return nil
}

// PreviewOptions controls WritePreview.
type PreviewOptions struct {
	Palette render.Palette
	// MaxSize bounds the longer side of the preview; zero keeps the grid size.
	MaxSize int
	// Contour draws band edges every Contour height units; zero disables them.
	Contour uint16
}

// Preview renders a coloured, optionally downscaled image of the grid.
func Preview(g *core.Grid16, opts PreviewOptions) image.Image {
	pal := opts.Palette
	if len(pal) == 0 {
		pal = render.MustPalette("terrain")
	}
	img := render.Image(g.Cells(), g.W, g.H, pal)
	if opts.Contour > 0 {
		render.FillContour(img.Pix, g.Cells(), g.W, opts.Contour, contourColor)
	}

	longest := max(g.W, g.H)
	if opts.MaxSize <= 0 || longest <= opts.MaxSize {
		return img
	}
	w := max(g.W*opts.MaxSize/longest, 1)
	h := max(g.H*opts.MaxSize/longest, 1)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// WritePreview encodes Preview as PNG.
func WritePreview(w io.Writer, g *core.Grid16, opts PreviewOptions) error {
	if err := png.Encode(w, Preview(g, opts)); err != nil {
		return fmt.Errorf("write preview: %w", err)
	}
	return nil
}

// PreviewSuffix marks a path as a coloured preview rather than a heightmap.
const PreviewSuffix = ".preview.png"

// WritePNG writes the grid at full resolution as a 16-bit grayscale PNG.
func WritePNG(w io.Writer, g *core.Grid16) error {
	if err := png.Encode(w, Gray16(g)); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

// WriteFile picks a writer from path's extension: .r16 and .raw write raw
// samples, .tif and .tiff write TIFF, .png writes a 16-bit grayscale PNG and
// names ending in PreviewSuffix write a coloured preview.
func WriteFile(path string, g *core.Grid16, opts PreviewOptions) (err error) {
	var write func(io.Writer) error
	lower := strings.ToLower(path)
	switch ext := filepath.Ext(lower); {
	case strings.HasSuffix(lower, PreviewSuffix):
		write = func(w io.Writer) error { return WritePreview(w, g, opts) }
	case ext == ".r16" || ext == ".raw":
		write = func(w io.Writer) error { return WriteRaw(w, g) }
	case ext == ".tif" || ext == ".tiff":
		write = func(w io.Writer) error { return WriteTIFF(w, g) }
	case ext == ".png":
		write = func(w io.Writer) error { return WritePNG(w, g) }
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}
