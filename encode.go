package mandel

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an image file format a Raster can be encoded to.
type Format int

const (
	// FormatPNG is lossless PNG (the default).
	FormatPNG Format = iota
	// FormatBMP is uncompressed Windows bitmap.
	FormatBMP
	// FormatTIFF is Deflate-compressed TIFF.
	FormatTIFF
)

// String returns the lowercase format name.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks a format from the file extension.
// Unknown extensions yield an error.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return 0, fmt.Errorf("mandel: unsupported image extension %q", filepath.Ext(path))
	}
}

// Encode writes the raster to w in the given format.
func (r *Raster) Encode(w io.Writer, f Format) error {
	return EncodeImage(w, r, f)
}

// EncodeImage writes any image to w in the given format. It is used for
// scaled or annotated copies of a raster.
func EncodeImage(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("mandel: unsupported format %v", f)
	}
}

// SaveImage writes img to path, choosing the format from the extension.
func SaveImage(path string, img image.Image) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return saveAs(path, img, f)
}

// Save writes the raster to path, choosing the format from the extension.
func (r *Raster) Save(path string) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return saveAs(path, r, f)
}

// SavePNG saves the raster to a PNG file.
func (r *Raster) SavePNG(path string) error {
	return saveAs(path, r, FormatPNG)
}

func saveAs(path string, img image.Image, format Format) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := EncodeImage(f, img, format); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return f.Close()
}
