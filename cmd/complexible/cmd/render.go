package cmd

import (
	"fmt"
	"io"

	"github.com/kevmasajedi/complexible/foundation/utils/mathx"
)

// renderer prints results, styled unless plain is set
type renderer struct {
	w         io.Writer
	formatter mathx.Formatter
	plain     bool
}

func (a *app) renderer(w io.Writer) renderer {
	return renderer{w: w, formatter: a.formatter, plain: a.opts.plain}
}

// Complex prints the pretty and precision blocks of z.
// Plain output is identical to Formatter.Block.
func (r renderer) Complex(z mathx.Complex) {
	if r.plain {
		fmt.Fprint(r.w, r.formatter.Block(z))
		return
	}

	f := r.formatter
	r.section("Pretty Values:", [][2]string{
		{"Cartesian Form:", f.PrettyCartesian(z)},
		{"Polar Form:", f.PrettyPolarRadians(z)},
		{"Polar Form:", f.PrettyPolarDegrees(z)},
	})
	r.section("Precision Values:", [][2]string{
		{"Cartesian Form:", f.Cartesian(z)},
		{"Polar Form:", f.PolarRadians(z)},
		{"Polar Form:", f.PolarDegrees(z)},
	})
}

func (r renderer) section(heading string, rows [][2]string) {
	fmt.Fprintln(r.w, HeadingStyle.Render(heading))
	for _, row := range rows {
		fmt.Fprintf(r.w, "%s %s\n", LabelStyle.Render(row[0]), ValueStyle.Render(row[1]))
	}
}

// Bool prints true or false
func (r renderer) Bool(v bool) {
	text := fmt.Sprintf("%t", v)
	switch {
	case r.plain:
	case v:
		text = TrueStyle.Render(text)
	default:
		text = FalseStyle.Render(text)
	}
	fmt.Fprintln(r.w, text)
}
