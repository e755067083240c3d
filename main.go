package main

import (
	"fmt"
	"os"

	"github.com/df07/go-optical-raytracer/cmd"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	sceneFlag := cli.StringFlag{
		Name:  "scene, s",
		Usage: "built-in scene to use (see list-scenes)",
	}

	app := cli.NewApp()
	app.Name = "optrace"
	app.Usage = "trace polarized rays through 2D optical benches"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "log verbosity: debug, info, notice, warning or error",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "list-scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:  "trace",
			Usage: "trace a scene and report path statistics",
			Description: `
Trace every source ray of a built-in scene through its elements. Branching
interactions (partial reflection, beam splitting, dichroic separation) spawn
child rays until they fall below the emission threshold or hit a budget.

Optionally plot the resulting paths to PNG and/or PDF.`,
			Flags: []cli.Flag{
				sceneFlag,
				cli.StringFlag{
					Name:  "png",
					Usage: "write a raster plot of the paths to this file",
				},
				cli.StringFlag{
					Name:  "pdf",
					Usage: "write a vector plot of the paths to this file",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 1024,
					Usage: "plot width (pixels or points)",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 512,
					Usage: "plot height (pixels or points)",
				},
				cli.BoolFlag{
					Name:  "sequential",
					Usage: "trace source rays on a single goroutine",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of parallel workers (0 = CPU count)",
				},
				cli.Float64Flag{
					Name:  "threshold",
					Usage: "minimum intensity for emitted child rays",
				},
				cli.IntFlag{
					Name:  "max-events",
					Usage: "maximum interactions along one branch",
				},
				cli.Float64Flag{
					Name:  "max-length",
					Usage: "propagation budget per source ray (mm)",
				},
			},
			Action: cmd.Trace,
		},
		{
			Name:        "paraxial",
			Usage:       "print the ABCD analysis of a scene's lens train",
			Description: `Collect the lenses crossed by the scene's optical axis and compose their ray transfer matrices.`,
			Flags:       []cli.Flag{sceneFlag},
			Action:      cmd.Paraxial,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
