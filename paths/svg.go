package paths

import (
	"bufio"
	"fmt"
	"os"

	"github.com/HellOwhatAs/ln/lnerr"
)

// WriteSVG writes ps (assumed already in pixel space, as produced by
// camera.Camera.Project) to path as an SVG document of width x height user
// units, one <polyline> element per path. Hand-written XML encoding is
// simple enough here to not warrant a dependency (no styling, no paths
// beyond straight polylines).
func WriteSVG(ps Paths, path string, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return lnerr.NewIoError("write_svg", err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n", width, height, width, height)
	fmt.Fprint(w, "<g fill=\"none\" stroke=\"black\" stroke-width=\"1\">\n")
	for _, p := range ps {
		fmt.Fprint(w, "<polyline points=\"")
		for i, v := range p {
			if i > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprintf(w, "%g,%g", v.X, v.Y)
		}
		fmt.Fprint(w, "\" />\n")
	}
	fmt.Fprint(w, "</g>\n</svg>\n")

	if err := w.Flush(); err != nil {
		f.Close()
		return lnerr.NewIoError("write_svg", err)
	}
	return lnerr.NewIoError("write_svg", f.Close())
}
