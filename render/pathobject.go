package render

import (
	"fmt"

	"github.com/snapkit/snap/constants"
)

// PathObject owns the three SVG surfaces a block draws onto, in fixed
// z-order: a dark shadow copy offset by the dark-path offset (drawn
// first, at the bottom), the primary path, and a light highlight copy
// (drawn last, on top). The ordering is a visual-layering contract, not
// an accident of construction.
//
// A PathObject does no geometry computation: it serializes path strings
// computed elsewhere into renderable form.
type PathObject struct {
	group *Element

	svgPathDark  *Element
	svgPath      *Element
	svgPathLight *Element

	darkOffset float64
	rtl        bool
}

// NewPathObject builds the three surfaces inside a fresh <g> container.
func NewPathObject(c *constants.Constants) *PathObject {
	po := &PathObject{
		group:        NewElement("g"),
		svgPathDark:  NewElement("path"),
		svgPath:      NewElement("path"),
		svgPathLight: NewElement("path"),
		darkOffset:   c.DarkPathOffset,
	}
	po.svgPathDark.SetAttr("class", "blockPathDark")
	po.svgPath.SetAttr("class", "blockPath")
	po.svgPathLight.SetAttr("class", "blockPathLight")
	po.svgPathLight.SetAttr("fill", "none")
	// Bottom to top: dark, main, light.
	po.group.AppendChild(po.svgPathDark)
	po.group.AppendChild(po.svgPath)
	po.group.AppendChild(po.svgPathLight)
	po.applyTransforms()
	return po
}

// Group returns the container element holding the three surfaces.
func (po *PathObject) Group() *Element { return po.group }

// SetPaths writes the main outline into the dark and primary surfaces
// and the highlight outline into the light surface.
func (po *PathObject) SetPaths(main, highlight string) {
	po.svgPathDark.SetAttr("d", main)
	po.svgPath.SetAttr("d", main)
	po.svgPathLight.SetAttr("d", highlight)
}

// FlipRTL toggles horizontal mirroring of all three surfaces. The dark
// surface reapplies its shadow translation after the flip so the shadow
// offset direction stays consistent. Applying FlipRTL twice restores
// every transform attribute to its pre-flip value exactly.
func (po *PathObject) FlipRTL() {
	po.rtl = !po.rtl
	po.applyTransforms()
}

// IsFlipped reports whether the surfaces are currently mirrored.
func (po *PathObject) IsFlipped() bool { return po.rtl }

func (po *PathObject) applyTransforms() {
	translate := fmt.Sprintf("translate(%s,%s)", fnum(po.darkOffset), fnum(po.darkOffset))
	if po.rtl {
		po.svgPathDark.SetAttr("transform", translate+" scale(-1 1)")
		po.svgPath.SetAttr("transform", "scale(-1 1)")
		po.svgPathLight.SetAttr("transform", "scale(-1 1)")
	} else {
		po.svgPathDark.SetAttr("transform", translate)
		po.svgPath.SetAttr("transform", "")
		po.svgPathLight.SetAttr("transform", "")
	}
}

// SetStyle applies externally computed fill and stroke declarations.
// Style strings are an opaque sink here; theme management happens
// outside the rendering core.
func (po *PathObject) SetStyle(fill, stroke string) {
	po.svgPath.SetAttr("fill", fill)
	po.svgPath.SetAttr("stroke", stroke)
}

// SetDisabled toggles the disabled visual state on the primary surface.
func (po *PathObject) SetDisabled(disabled bool) {
	if disabled {
		po.svgPath.SetAttr("class", "blockPath blockDisabled")
	} else {
		po.svgPath.SetAttr("class", "blockPath")
	}
}
