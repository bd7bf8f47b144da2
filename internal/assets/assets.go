// Package assets embeds the fonts the rasterizer draws with, so output never
// depends on what is installed on the host.
package assets

import _ "embed"

// DejaVuSans covers the Arabic script subtitle.
//
//go:embed fonts/DejaVuSans.ttf
var DejaVuSans []byte

//go:embed fonts/DejaVuSerif.ttf
var DejaVuSerif []byte

//go:embed fonts/DejaVuSerif-Bold.ttf
var DejaVuSerifBold []byte
