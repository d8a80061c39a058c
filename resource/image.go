// resource/image.go
package resource

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"golang.org/x/image/draw"
)

// buildImage loads the node's image file and, when the node declares a
// size, scales it down (or up) once at load time.
func buildImage(b *Builder, n *Node) (fyne.CanvasObject, error) {
	img := &canvas.Image{FillMode: canvas.ImageFillContain}
	if n.Image != "" {
		src, err := decodeImage(b.Path(n.Image))
		if err != nil {
			return nil, fmt.Errorf("%w: image %q: %v", ErrInvalidLayout, n.Name, err)
		}
		img.Image = scaleImage(src, int(n.Width), int(n.Height))
	}
	if n.Width > 0 || n.Height > 0 {
		img.SetMinSize(fyne.NewSize(n.Width, n.Height))
	}
	return img, nil
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

// scaleImage fits src into w x h keeping its aspect ratio. A zero dimension
// is derived from the other one; both zero returns src unchanged.
func scaleImage(src image.Image, w, h int) image.Image {
	sb := src.Bounds()
	if sb.Dx() == 0 || sb.Dy() == 0 || (w <= 0 && h <= 0) {
		return src
	}
	switch {
	case w <= 0:
		w = sb.Dx() * h / sb.Dy()
	case h <= 0:
		h = sb.Dy() * w / sb.Dx()
	default:
		if sb.Dx()*h > sb.Dy()*w {
			h = sb.Dy() * w / sb.Dx()
		} else {
			w = sb.Dx() * h / sb.Dy()
		}
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, sb, draw.Over, nil)
	return dst
}
