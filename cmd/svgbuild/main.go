// Command svgbuild renders a scene file (YAML or TOML) to SVG.
//
//	svgbuild [-config render.toml] [-o out.svg] [-v] scene.yaml
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/benoitkugler/svgbuild/config"
	"github.com/benoitkugler/svgbuild/scene"
	"github.com/benoitkugler/svgbuild/svg"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var (
	configArg  = flag.String("config", "", "Path to the rendering configuration (TOML or YAML).")
	outputArg  = flag.String("o", "", "Output file. Defaults to stdout.")
	verbosePtr = flag.Bool("v", false, "Log debug messages.")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] scene.(yaml|toml)\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(zerolog.InfoLevel)
	if *verbosePtr {
		logger = logger.Level(zerolog.DebugLevel)
	}
	svg.SetLogger(&logger)

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *configArg, *outputArg); err != nil {
		logger.Error().Err(err).Msg("rendering failed")
		os.Exit(1)
	}
}

func run(scenePath, configPath, outputPath string) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
	}

	s, err := scene.Load(scenePath)
	if err != nil {
		return err
	}
	doc, err := s.Build(cfg)
	if err != nil {
		return errors.Wrapf(err, "building %s", scenePath)
	}

	if outputPath == "" {
		if _, err := doc.WriteTo(os.Stdout); err != nil {
			return errors.Wrap(err, "writing svg")
		}
		_, err = fmt.Fprintln(os.Stdout)
		return err
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	if _, err := doc.WriteTo(f); err != nil {
		f.Close()
		return errors.Wrap(err, "writing svg")
	}
	return errors.Wrap(f.Close(), "closing output")
}
