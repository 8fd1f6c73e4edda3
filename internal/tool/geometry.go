package tool

import "image"

// Box returns the axis-aligned box spanned by two points. Min holds the
// smaller coordinates and Max the larger ones, both as pixel positions.
func Box(a, b image.Point) image.Rectangle {
	return image.Rect(a.X, a.Y, b.X, b.Y)
}

// TriangleVertices returns the triangle drawn for a drag from anchor to cur.
// The base is the top edge of the box and the apex sits under its midpoint
// on the bottom edge. A perfectly vertical drag builds the triangle from cur
// and a height mirrored around the box centre instead.
func TriangleVertices(anchor, cur image.Point) [3]image.Point {
	box := Box(anchor, cur)
	center := image.Pt((box.Min.X+box.Max.X)/2, (box.Min.Y+box.Max.Y)/2)
	topLeft := box.Min
	topRight := image.Pt(box.Max.X, box.Min.Y)
	if anchor.X == cur.X {
		return [3]image.Point{cur, image.Pt(center.X, center.Y-(topRight.X-center.X)), topRight}
	}
	return [3]image.Point{topLeft, image.Pt(center.X, box.Max.Y), topRight}
}

// margin is how far past the geometry a stroke can paint.
func (t *Tool) margin() int {
	return t.Style.Width/2 + 2
}

// pixelArea converts geometry bounds, whose Max is an inclusive pixel
// position, into the rectangle a stroke may touch.
func (t *Tool) pixelArea(r image.Rectangle) image.Rectangle {
	r.Max = r.Max.Add(image.Pt(1, 1))
	return r.Inset(-t.margin())
}
