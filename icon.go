package snap

// Default icon footprint, matching the circular badge icons (comment,
// warning, mutator) of the reference renderer.
const defaultIconSize = 17

// Icon is a per-block badge (comment, warning, mutator) that occupies
// space on the block's first row and may own a pop-up bubble. Bubble
// content is outside this package; the layout pass consumes only the
// icon's size, and connection hiding toggles the bubble's visibility.
type Icon struct {
	size          Size
	bubbleVisible bool
}

// NewIcon creates an icon with the default badge footprint.
func NewIcon() *Icon {
	return &Icon{size: Sz(defaultIconSize, defaultIconSize)}
}

// Size returns the icon's footprint.
func (ic *Icon) Size() Size { return ic.size }

// SetBubbleVisible shows or hides the icon's bubble.
func (ic *Icon) SetBubbleVisible(visible bool) { ic.bubbleVisible = visible }

// BubbleVisible reports whether the icon's bubble is open.
func (ic *Icon) BubbleVisible() bool { return ic.bubbleVisible }
