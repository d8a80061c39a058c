// assets/assets.go
package assets

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

//go:embed icon/sun.svg
var IconSunSVG []byte

//go:embed icon/moon.svg
var IconMoonSVG []byte

// DemoLayouts is the resource document the preview tool opens when it is
// given no files.
//
//go:embed demo.yaml
var DemoLayouts []byte

// Demo returns the demo document as a bundled resource.
func Demo() fyne.Resource {
	return fyne.NewStaticResource("demo.yaml", DemoLayouts)
}
