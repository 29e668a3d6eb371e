package conversion

import (
	"errors"
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

var ErrEmptySprite = errors.New("sprite data is empty")

// SpriteScaler decodes downloaded sprite bytes and resizes them to a fixed
// square for the picture frame.
type SpriteScaler struct {
	Width         int
	Height        int
	Interpolation gocv.InterpolationFlags
}

// NewSpriteScaler scales to size x size with cubic interpolation.
func NewSpriteScaler(size int) *SpriteScaler {
	return &SpriteScaler{
		Width:         size,
		Height:        size,
		Interpolation: gocv.InterpolationCubic,
	}
}

// Scale decodes PNG/JPEG/GIF-first-frame bytes and returns an RGBA image of
// Width x Height. Transparency is kept when the source carries it.
func (s *SpriteScaler) Scale(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptySprite
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("invalid sprite size: %dx%d", s.Width, s.Height)
	}

	src, err := decode(data)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	gocv.Resize(src, &dst, image.Point{X: s.Width, Y: s.Height}, 0, 0, s.Interpolation)
	if dst.Empty() {
		return nil, fmt.Errorf("sprite resize to %dx%d produced an empty Mat", s.Width, s.Height)
	}

	img, err := dst.ToImage()
	if err != nil {
		return nil, fmt.Errorf("Mat to image conversion failed: %w", err)
	}
	return img, nil
}

// decode keeps the alpha channel where possible. 16-bit sprites are scaled
// down to 8 bits per channel; other layouts ToImage cannot convert
// (gray+alpha, float) fall back to a three-channel 8-bit decode.
func decode(data []byte) (gocv.Mat, error) {
	mat, err := gocv.IMDecode(data, gocv.IMReadUnchanged)
	if err != nil {
		return gocv.Mat{}, fmt.Errorf("failed to decode sprite with OpenCV: %w", err)
	}
	if mat.Empty() {
		mat.Close()
		return gocv.Mat{}, errors.New("failed to decode sprite: unsupported or corrupt data")
	}

	switch mat.Type() {
	case gocv.MatTypeCV8UC1, gocv.MatTypeCV8UC3, gocv.MatTypeCV8UC4:
		return mat, nil
	case gocv.MatTypeCV16UC1, gocv.MatTypeCV16UC3, gocv.MatTypeCV16UC4:
		narrow := gocv.NewMat()
		mat.ConvertToWithParams(&narrow, gocv.MatTypeCV8U, 1.0/257, 0)
		mat.Close()
		if narrow.Empty() {
			narrow.Close()
			return gocv.Mat{}, errors.New("failed to convert 16-bit sprite to 8 bits")
		}
		return narrow, nil
	}

	mat.Close()
	mat, err = gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return gocv.Mat{}, fmt.Errorf("failed to decode sprite with OpenCV: %w", err)
	}
	if mat.Empty() {
		mat.Close()
		return gocv.Mat{}, errors.New("failed to decode sprite: unsupported or corrupt data")
	}
	return mat, nil
}
