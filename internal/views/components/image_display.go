package components

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	namePlaceholder   = "Pokémon Name"
	spritePlaceholder = "Pokémon Picture"
)

// PictureFrame shows the creature name above its sprite. Without a sprite
// the frame shows a text placeholder instead.
type PictureFrame struct {
	container   *fyne.Container
	nameLabel   *widget.Label
	sprite      *canvas.Image
	placeholder *widget.Label
}

// NewPictureFrame creates the name label and a square sprite area of
// spriteSize.
func NewPictureFrame(spriteSize float32) *PictureFrame {
	pf := &PictureFrame{}
	pf.createComponents(spriteSize)
	pf.buildLayout()
	return pf
}

func (pf *PictureFrame) createComponents(spriteSize float32) {
	pf.nameLabel = NewHeading(namePlaceholder)

	pf.sprite = canvas.NewImageFromImage(nil)
	pf.sprite.FillMode = canvas.ImageFillContain
	pf.sprite.ScaleMode = canvas.ImageScalePixels
	pf.sprite.SetMinSize(fyne.NewSize(spriteSize, spriteSize))
	pf.sprite.Hide()

	pf.placeholder = NewBodyLabel(spritePlaceholder)
}

func (pf *PictureFrame) buildLayout() {
	pf.container = container.NewVBox(
		pf.nameLabel,
		container.NewCenter(container.NewStack(pf.placeholder, pf.sprite)),
	)
}

func (pf *PictureFrame) SetName(name string) {
	pf.nameLabel.SetText(name)
}

func (pf *PictureFrame) Name() string {
	return pf.nameLabel.Text
}

// SetSprite displays img, or the placeholder when img is nil.
func (pf *PictureFrame) SetSprite(img image.Image) {
	if img == nil {
		pf.ClearSprite()
		return
	}
	pf.sprite.Image = img
	pf.sprite.Show()
	pf.sprite.Refresh()
	pf.placeholder.Hide()
}

// ClearSprite blanks the image but keeps the name.
func (pf *PictureFrame) ClearSprite() {
	pf.sprite.Image = nil
	pf.sprite.Hide()
	pf.sprite.Refresh()
	pf.placeholder.Show()
}

func (pf *PictureFrame) HasSprite() bool {
	return pf.sprite.Image != nil
}

func (pf *PictureFrame) GetContainer() *fyne.Container {
	return pf.container
}
