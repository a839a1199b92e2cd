// Package layout computes panel dimensions for the klip window.
package layout

// PanelLayout holds calculated dimensions for the list/preview layout.
type PanelLayout struct {
	Width  int
	Height int

	ListWidth    int
	PreviewWidth int

	ContentHeight int // height minus status bar

	PreviewVisible bool
	SinglePanel    bool
}

const (
	statusBarHeight = 1
	minListWidth    = 30
	maxListWidth    = 60
)

// Calculate computes the panel layout from terminal dimensions. Narrow
// terminals collapse to the list alone; wide ones split list and preview.
func Calculate(width, height int, previewVisible bool) PanelLayout {
	l := PanelLayout{
		Width:          width,
		Height:         height,
		PreviewVisible: previewVisible,
		ContentHeight:  height - statusBarHeight,
	}

	if l.ContentHeight < 1 {
		l.ContentHeight = 1
	}

	switch {
	case width < 70 || !previewVisible:
		l.SinglePanel = true
		l.PreviewVisible = false
		l.ListWidth = width
		l.PreviewWidth = 0
	default:
		l.ListWidth = clamp(width*2/5, minListWidth, maxListWidth)
		l.PreviewWidth = width - l.ListWidth
	}

	return l
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
