package feed

import (
	"fyne.io/fyne/v2"

	"VorkathHelper/encounter"
)

type recordingIndicator struct {
	visible bool
	count   int
}

func (r *recordingIndicator) Show(count int, _ fyne.Resource) {
	r.visible = true
	r.count = count
}

func (r *recordingIndicator) Update(count int) { r.count = count }

func (r *recordingIndicator) Hide() { r.visible = false }

type staticIcons struct{}

func (staticIcons) Icon(s encounter.Special) fyne.Resource {
	return fyne.NewStaticResource(s.String(), nil)
}
