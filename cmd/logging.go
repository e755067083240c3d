package cmd

import (
	"github.com/df07/go-optical-raytracer/pkg/log"
	"github.com/urfave/cli"
)

const tracerModule = "tracer"

var (
	logger       = log.New("optrace")
	tracerLogger = log.New(tracerModule)
)

// setupLogging applies the global verbosity flags. -v and -vv take
// precedence over --log-level.
func setupLogging(ctx *cli.Context) error {
	level, err := levelFromFlags(ctx.GlobalBool("v"), ctx.GlobalBool("vv"), ctx.GlobalString("log-level"))
	if err != nil {
		return err
	}
	log.SetLevel(level)

	// Degenerate element warnings from the tracer stay visible at any level
	if level > log.Warning {
		log.SetModuleLevel(tracerModule, log.Warning)
	} else {
		log.SetModuleLevel(tracerModule, level)
	}
	return nil
}

func levelFromFlags(verbose, veryVerbose bool, name string) (log.Level, error) {
	switch {
	case veryVerbose:
		return log.Debug, nil
	case verbose:
		return log.Info, nil
	case name == "":
		return log.Notice, nil
	}
	return log.ParseLevel(name)
}
