package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jessevdk/go-flags"

	"github.com/kaeufl/bfformatter"
)

type options struct {
	StripComments bool    `long:"sc" description:"Strip comments, i.e. any characters but []<>+-.,"`
	Invert        bool    `long:"inv" description:"Invert the image"`
	Fraction      float64 `long:"frac" default:"0.5" description:"Fraction of white in the image. This controls the resolution of the resulting rendering"`

	Args struct {
		SourceFile string `positional-arg-name:"source_file" description:"Source code file to be formatted"`
		ImageFile  string `positional-arg-name:"image_file" description:"Image file to be used as a template"`
		OutputFile string `positional-arg-name:"output_file" description:"Output file"`
	} `positional-args:"yes" required:"yes"`
}

const (
	exitUsage = 1
	exitIO    = 2
)

func main() {
	opts := &options{}

	if _, err := flags.Parse(opts); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		// go-flags already printed the parse error
		os.Exit(exitUsage)
	}

	f, err := bfformatter.New(bfformatter.Config{
		SourceFile:    opts.Args.SourceFile,
		StripComments: opts.StripComments,
	})
	if err != nil {
		fail(err)
	}

	if _, err = f.Format(opts.Args.ImageFile, opts.Args.OutputFile, bfformatter.RenderOptions{
		Invert:             opts.Invert,
		WhitespaceFraction: opts.Fraction,
	}); err != nil {
		fail(err)
	}

	fmt.Printf("Output written to %s.\n", opts.Args.OutputFile)
}

func fail(err error) {
	color.New(color.FgRed).Fprintln(os.Stderr, err)

	if errors.Is(err, bfformatter.ErrNoSource) || errors.Is(err, bfformatter.ErrFraction) {
		os.Exit(exitUsage)
	}
	os.Exit(exitIO)
}
