package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// TypeFrame shows the primary and secondary type.
type TypeFrame struct {
	container *fyne.Container
	type1     *widget.Label
	type2     *widget.Label
}

// NewTypeFrame creates the two type labels.
func NewTypeFrame() *TypeFrame {
	tf := &TypeFrame{
		type1: NewBodyLabel("Type 1"),
		type2: NewBodyLabel("Type 2"),
	}
	tf.container = container.NewGridWithColumns(2, tf.type1, tf.type2)
	return tf
}

func (tf *TypeFrame) SetTypes(type1, type2 string) {
	tf.type1.SetText(type1)
	tf.type2.SetText(type2)
}

func (tf *TypeFrame) Types() (string, string) {
	return tf.type1.Text, tf.type2.Text
}

func (tf *TypeFrame) GetContainer() *fyne.Container {
	return tf.container
}

// InfoFrame is the "Pokedex Entry" panel: height, weight, catch rate and
// abilities on a two-column grid under a heading.
type InfoFrame struct {
	container *fyne.Container
	height    *widget.Label
	weight    *widget.Label
	catchRate *widget.Label
	abilities *widget.Label
}

// NewInfoFrame creates the "Pokedex Entry" panel.
func NewInfoFrame() *InfoFrame {
	inf := &InfoFrame{
		height:    NewBodyLabel("Height"),
		weight:    NewBodyLabel("Weight"),
		catchRate: NewBodyLabel("Catch Rate"),
		abilities: NewBodyLabel("Abilities"),
	}
	inf.container = container.NewBorder(
		NewHeading("Pokedex Entry"), nil, nil, nil,
		container.NewGridWithRows(2,
			container.NewGridWithColumns(2, inf.height, inf.weight),
			container.NewGridWithColumns(2, inf.catchRate, inf.abilities),
		),
	)
	return inf
}

func (inf *InfoFrame) SetDetails(height, weight, catchRate, abilities string) {
	inf.height.SetText(height)
	inf.weight.SetText(weight)
	inf.catchRate.SetText(catchRate)
	inf.abilities.SetText(abilities)
}

// Details returns height, weight, catch rate and abilities as displayed.
func (inf *InfoFrame) Details() (string, string, string, string) {
	return inf.height.Text, inf.weight.Text, inf.catchRate.Text, inf.abilities.Text
}

func (inf *InfoFrame) GetContainer() *fyne.Container {
	return inf.container
}
