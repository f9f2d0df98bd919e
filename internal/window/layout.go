package window

import "fyne.io/fyne/v2"

// compactLayout stacks objects top to bottom with no gap between them,
// each stretched to the full width inside a fixed inset. The stack is
// centered vertically when the container is taller than it needs.
type compactLayout struct {
	insetX float32
	insetY float32
}

func (l compactLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var size fyne.Size
	for _, o := range objects {
		if !o.Visible() {
			continue
		}
		ms := o.MinSize()
		size.Width = fyne.Max(size.Width, ms.Width)
		size.Height += ms.Height
	}
	return size.Add(fyne.NewSize(2*l.insetX, 2*l.insetY))
}

func (l compactLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	var height float32
	for _, o := range objects {
		if o.Visible() {
			height += o.MinSize().Height
		}
	}

	y := fyne.Max(l.insetY, (size.Height-height)/2)
	width := size.Width - 2*l.insetX
	for _, o := range objects {
		if !o.Visible() {
			continue
		}
		h := o.MinSize().Height
		o.Move(fyne.NewPos(l.insetX, y))
		o.Resize(fyne.NewSize(width, h))
		y += h
	}
}
