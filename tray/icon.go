package tray

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	"github.com/yllada/event-table/common"
)

//go:embed assets/tray-icon.png
var trayIconPNG []byte

// Icon is a decoded tray icon. PNG is what the tray host receives;
// Pixels is the same image as raw RGBA.
type Icon struct {
	PNG    []byte
	Pixels *image.RGBA
}

// Size returns the icon dimensions.
func (i *Icon) Size() (int, int) {
	b := i.Pixels.Bounds()
	return b.Dx(), b.Dy()
}

// LoadIcon decodes the embedded tray icon.
func LoadIcon() (*Icon, error) {
	return DecodeIcon(trayIconPNG)
}

// DecodeIcon decodes a PNG into an Icon.
func DecodeIcon(data []byte) (*Icon, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrIconDecode, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty image", common.ErrIconDecode)
	}

	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(img.Bounds())
		draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	}
	return &Icon{PNG: data, Pixels: rgba}, nil
}
