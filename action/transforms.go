package action

import (
	"github.com/avoronkov/gridmdl/object"
)

// paint repaints the whole object; NullColor is the "leave as is" argument.
func paint(o *object.Object, color int) *object.Object {
	if color == object.NullColor {
		return o.Copy()
	}

	return o.Recolor(color)
}

// translate shifts the anchor additively.
func translate(o *object.Object, dr, dc int) *object.Object {
	return o.At(o.Row()+dr, o.Col()+dc)
}

// tile translates by whole multiples of the object's own shape.
func tile(o *object.Object, nr, nc int) *object.Object {
	h, w := o.Shape()

	return translate(o, nr*h, nc*w)
}

// justify zeroes one axis of the anchor.
func justify(o *object.Object, axis int) *object.Object {
	if axis == 0 {
		return translate(o, -o.Row(), 0)
	}

	return translate(o, 0, -o.Col())
}

// zero moves the anchor to the origin.
func zero(o *object.Object) *object.Object {
	return o.At(0, 0)
}

// rotate turns the grid num quarter turns counter-clockwise and rebuilds
// the object from the rotated grid, preserving the anchor.
func rotate(o *object.Object, num int) *object.Object {
	g := o.Grid()
	for i := 0; i < ((num%4)+4)%4; i++ {
		g = g.Rot90()
	}
	res, err := object.FromGridAt(g, o.Row(), o.Col(), o.Color())
	if err != nil {
		return o.Copy()
	}

	return res
}

// flip mirrors the grid along the given axis (0 = reverse rows, 1 = reverse
// columns) and rebuilds the object, preserving the anchor.
func flip(o *object.Object, axis int) *object.Object {
	res, err := object.FromGridAt(o.Grid().Flip(axis), o.Row(), o.Col(), o.Color())
	if err != nil {
		return o.Copy()
	}

	return res
}

func vflip(o *object.Object) *object.Object { return flip(o, 0) }

func hflip(o *object.Object) *object.Object { return flip(o, 1) }

// orthogonal composes an optional reflection (0 none, 1 vertical flip,
// 2 horizontal flip) with 0-3 quarter turns, rotation after reflection.
func orthogonal(o *object.Object, reflection, rotation int) *object.Object {
	result := o.Copy()
	switch reflection {
	case 1:
		result = vflip(result)
	case 2:
		result = hflip(result)
	}
	if rotation > 0 {
		result = rotate(result, rotation)
	}

	return result
}

// scale rewrites the V/H generator codes (stored as value-1 when value > 0).
// Objects without a generator are returned unchanged: scaling mutates
// generator parameters, it never resamples pixels.
func scale(o *object.Object, vertical, horizontal int) *object.Object {
	if !o.Generating() {
		return o.Copy()
	}
	codes := o.Codes()
	if vertical > 0 {
		codes["V"] = vertical - 1
	}
	if horizontal > 0 {
		codes["H"] = horizontal - 1
	}

	return o.Recode(codes)
}

// resize adjusts the primary's generator per axis until its shape matches
// the secondary's, leaving already-equal axes untouched.
func resize(o, secondary *object.Object) *object.Object {
	result := o.Copy()
	oh, ow := o.Shape()
	sh, sw := secondary.Shape()
	if oh != sh {
		result = scale(result, sh, 0)
	}
	if ow != sw {
		result = scale(result, 0, sw)
	}

	return result
}

// adjoin translates the primary along one axis until it touches the
// secondary, preferring the row axis.
func adjoin(o, secondary *object.Object) *object.Object {
	ch := ChebyshevVector(o, secondary)
	if ch[0] != 0 {
		return translate(o, ch[0], 0)
	}
	if ch[1] != 0 {
		return translate(o, 0, ch[1])
	}

	return o.Copy()
}

// align translates the primary past contact into exact boundary alignment:
// the contact offset extended by one full shape length along the direction
// of travel.
func align(o, secondary *object.Object) *object.Object {
	ch := ChebyshevVector(o, secondary)
	h, w := o.Shape()
	if ch[0] != 0 {
		sign := 1
		if ch[0] < 0 {
			sign = -1
		}

		return translate(o, ch[0]+sign*h, 0)
	}
	if ch[1] != 0 {
		sign := 1
		if ch[1] < 0 {
			sign = -1
		}

		return translate(o, 0, ch[1]+sign*w)
	}

	return o.Copy()
}

// Compound macros: fixed two-step combinations with no free arguments.

func vflipTile(o *object.Object) *object.Object { return tile(vflip(o), 1, 0) }

func hflipTile(o *object.Object) *object.Object { return tile(hflip(o), 0, 1) }

func vflipHinge(o *object.Object) *object.Object {
	h, _ := o.Shape()

	return translate(vflip(o), h-1, 0)
}

func hflipHinge(o *object.Object) *object.Object {
	_, w := o.Shape()

	return translate(hflip(o), 0, w-1)
}

// rotTile turns once and tiles away from the nearest board edge.
func rotTile(o *object.Object) *object.Object {
	turned := rotate(o, 1)
	h, w := o.Shape()
	switch {
	case h > o.Row():
		return tile(turned, 1, 0)
	case w > o.Col():
		return tile(turned, 0, 1)
	default:
		return tile(turned, -1, 0)
	}
}
