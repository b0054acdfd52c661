// SPDX-License-Identifier: MIT
// Package: kmeanslab/render
//
// color.go — palette helpers shared by the PNG and HTML renderers.

package render

import (
	"fmt"
	"image/color"

	"github.com/gogpu/gg"
)

// hex formats c as #rrggbb for chart styles.
func hex(c gg.RGBA) string {
	n := color.NRGBAModel.Convert(c.Color()).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
