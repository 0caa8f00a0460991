// Command heightmapper runs a generator pipeline and writes the result.
//
//	heightmapper -w 1081 -h 1081 -seed 7 \
//	    -step plain:12000,2 -step noise -step river:depth=2400 -step blur:4 \
//	    -out terrain.r16 -out terrain.png -out terrain.preview.png
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"heightmapper/internal/app"
	"heightmapper/internal/export"
	"heightmapper/internal/pipeline"
	"heightmapper/internal/render"
	"heightmapper/internal/terrain"
)

type outList []string

func (l *outList) String() string {
	return strings.Join(*l, ",")
}

func (l *outList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	var outs outList
	flag.Var(&outs, "out", "output file; .r16/.raw, .tif/.tiff and .png write 16-bit heightmaps, *.preview.png a coloured preview (repeatable)")
	previewSize := flag.Int("preview-size", 1024, "longest side of .preview.png images (0 keeps the field size)")
	contour := flag.Int("contour", 0, "contour interval for .preview.png images (0 disables)")
	list := flag.Bool("list", false, "list generators and their options, then exit")
	flag.Parse()

	if *list {
		printGenerators()
		return
	}

	logger := log.New(os.Stderr, "heightmapper: ", 0)
	if !cfg.Verbose {
		logger.SetOutput(io.Discard)
	}

	gens, err := cfg.Generators()
	if err != nil {
		log.Fatalf("heightmapper: %v", err)
	}
	p, err := app.Generate(cfg.FieldConfig(), gens, logger)
	if err != nil {
		log.Fatalf("heightmapper: %v", err)
	}

	f := p.Field()
	sum := pipeline.Summarize(f)
	fmt.Printf("seed %d  %dx%d  steps %d  min %d  max %d  mean %.1f  sha256 %s\n",
		f.Seed(), f.Grid().W, f.Grid().H, len(p.Stats()), sum.Min, sum.Max, sum.Mean, sum.Checksum[:16])

	palette, err := render.NewPalette(cfg.Palette)
	if err != nil {
		log.Fatalf("heightmapper: %v", err)
	}
	opts := export.PreviewOptions{Palette: palette, MaxSize: *previewSize, Contour: uint16(*contour)}
	for _, path := range outs {
		if err := export.WriteFile(path, f.Grid(), opts); err != nil {
			log.Fatalf("heightmapper: %v", err)
		}
		fmt.Printf("wrote %s\n", path)
	}
}

func printGenerators() {
	for _, name := range terrain.Names() {
		g, _ := terrain.New(name)
		fmt.Printf("%s  %s\n", name, g.Description())
		for i := 0; i < g.OptionCount(); i++ {
			fmt.Printf("    %d %-10s %-6v %s\n", i, g.OptionKey(i), g.OptionValue(i), g.OptionPrompt(i))
		}
	}
}
