package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-optical-raytracer/pkg/paraxial"
	"github.com/df07/go-optical-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Paraxial prints the ABCD analysis of a scene's lens train.
func Paraxial(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}
	return runParaxial(os.Stdout, ctx.String("scene"))
}

func runParaxial(w io.Writer, name string) error {
	if name == "" {
		return errors.New("missing --scene argument")
	}

	sc, err := scene.ByName(name)
	if err != nil {
		return err
	}
	sys, err := sc.Paraxial()
	if err != nil {
		return err
	}

	for _, s := range sys.Skipped {
		logger.Noticef("ignoring non-lens element %s on the axis", s)
	}

	writeParaxial(w, sys)
	return nil
}

func writeParaxial(w io.Writer, sys *paraxial.System) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Lens", "Position (mm)", "Focal length (mm)"})
	for _, s := range sys.Surfaces {
		table.Append([]string{s.Name, fmt.Sprintf("%.3f", s.Distance), fmt.Sprintf("%.3f", s.FocalLength)})
	}
	table.Render()

	m := sys.Matrix()
	fmt.Fprintf(w, "\nABCD = [%.6g %.6g; %.6g %.6g]\n", m.At(0, 0), m.At(0, 1), m.At(1, 0), m.At(1, 1))
	if efl, ok := sys.EffectiveFocalLength(); ok {
		bfd, _ := sys.BackFocalDistance()
		fmt.Fprintf(w, "EFL = %.3f mm, BFD = %.3f mm\n", efl, bfd)
	} else {
		fmt.Fprintf(w, "afocal, angular magnification %.4g\n", sys.Magnification())
	}
}
