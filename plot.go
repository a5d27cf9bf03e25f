package monospline

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"

	"gonum.org/v1/gonum/floats"
)

// curveSamples is the number of points used to trace the curve.
const curveSamples = 512

// https://github.com/rsmith-nl/ps-lib/blob/main/grid.inc
// https://stackoverflow.com/a/20866012

const psPrologue = `%!PS
%% This is the color that the grid is drawn in.
/grid_major_color {1 .6 .6} def
/grid_color {.7 1 1} def
/line_color {.2 .2 .8} def
/dot_color {.1 .1 .1} def
/query_color {.9 .1 .1} def
/radius 1.5 def
/grid_major_lw 1.5 def
/grid_lw .5 def
/major 10 def

%% Usage: dx dy w h gridwh
/gridwh {
  4 dict begin
    /h exch def
    /w exch def
    /dy exch def
    /dx exch def
    gsave
        grid_lw setlinewidth
        grid_color setrgbcolor
        newpath
        dx dx w { 0 moveto 0 h rlineto } for
        dy dy h { 0 exch moveto w 0 rlineto } for
        stroke
        newpath
        grid_major_lw setlinewidth
        grid_major_color setrgbcolor
        0 dx major mul w { 0 moveto 0 h rlineto } for
        0 dy major mul h { 0 exch moveto w 0 rlineto } for
        stroke
    grestore
  end
} bind def

%% Usage: XArr YArr dots
/dots {
  /ys exch def /xs exch def
  0 1 xs length 1 sub {
    dup xs exch get exch ys exch get Translate
    newpath radius 0 360 arc fill
  } for
} bind def
`

// DrawPS writes a PostScript page with the curve over its knots, the knots
// themselves and the spline values at queries.
func (s *Spline) DrawPS(w io.Writer, queries []float64) error {
	bw := bufio.NewWriter(w)

	cx := make([]float64, curveSamples)
	floats.Span(cx, s.Xmin(), s.Xmax())
	cy := s.Evaluate(cx)
	qy := s.Evaluate(queries)

	xmin, xmax := s.Xmin(), s.Xmax()
	ymin, ymax := floats.Min(cy), floats.Max(cy)
	if len(queries) > 0 {
		xmin = math.Min(xmin, floats.Min(queries))
		xmax = math.Max(xmax, floats.Max(queries))
		ymin = math.Min(ymin, floats.Min(qy))
		ymax = math.Max(ymax, floats.Max(qy))
	}
	if ymax == ymin {
		ymin, ymax = ymin-1, ymax+1
	}

	fmt.Fprint(bw, psPrologue)
	writeArray(bw, "CurveX", cx)
	writeArray(bw, "CurveY", cy)
	writeArray(bw, "XValues", s.x)
	writeArray(bw, "YValues", s.y)
	writeArray(bw, "QueryX", queries)
	writeArray(bw, "QueryY", qy)

	fmt.Fprintf(bw, "/Xmin %g dup %g exch sub 0.02 mul abs sub def\n", xmin, xmax)
	fmt.Fprintf(bw, "/Xmax %g dup %g sub 0.02 mul abs add def\n", xmax, xmin)
	fmt.Fprintf(bw, "/Ymin %g dup %g exch sub 0.02 mul abs sub def\n", ymin, ymax)
	fmt.Fprintf(bw, "/Ymax %g dup %g sub 0.02 mul abs add def\n", ymax, ymin)

	fmt.Fprint(bw, `
/Xsize Xmax Xmin sub def
/Ysize Ymax Ymin sub def
/w currentpagedevice /PageSize get 0 get def
/h currentpagedevice /PageSize get 1 get def

w 10 div h 10 div w h gridwh

/Translate { %% x y Translate
	Ymin sub h mul Ysize div
	exch
	Xmin sub w mul Xsize div
	exch
} bind def

%% curve
newpath
line_color setrgbcolor
CurveX 0 get CurveY 0 get Translate moveto
1 1 CurveX length 1 sub {
	dup CurveX exch get exch CurveY exch get Translate lineto
} for
stroke

dot_color setrgbcolor
XValues YValues dots
query_color setrgbcolor
QueryX QueryY dots

showpage
`)
	return bw.Flush()
}

// DrawPSFile is DrawPS into a newly created file at path.
func (s *Spline) DrawPSFile(path string, queries []float64) error {
	ps, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.DrawPS(ps, queries); err != nil {
		ps.Close()
		return err
	}
	return ps.Close()
}

func writeArray(w io.Writer, name string, v []float64) {
	fmt.Fprintf(w, "/%s [\n", name)
	for i, f := range v {
		fmt.Fprintf(w, " %g\t%% %d\n", f, i)
	}
	fmt.Fprint(w, "] def\n")
}
