package main

import (
	"bytes"
	"flag"
	"fmt"
	goimage "image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/bmp"

	"github.com/kpfaulkner/pixbuf-go/colour"
	"github.com/kpfaulkner/pixbuf-go/format"
	"github.com/kpfaulkner/pixbuf-go/image"
	"github.com/kpfaulkner/pixbuf-go/reader"
	"github.com/kpfaulkner/pixbuf-go/util"
)

// pixread reads a PNG or BMP, re-reads it through a Reader with a margin
// around every side, and writes the result out as PNG. Handy for eyeballing
// the falloff modes.

func parseMode(s string) (reader.FalloffMode, error) {
	switch s {
	case "background":
		return reader.FalloffBackground, nil
	case "edge":
		return reader.FalloffEdge, nil
	case "repeat":
		return reader.FalloffRepeat, nil
	}
	return 0, fmt.Errorf("unknown falloff mode %q", s)
}

func main() {
	infile := flag.String("i", "", "input png or bmp file")
	outfile := flag.String("o", "", "output png file")
	margin := flag.Int("margin", 32, "pixels of falloff synthesized around every side")
	horz := flag.String("horz", "repeat", "horizontal falloff mode: background, edge or repeat")
	vert := flag.String("vert", "repeat", "vertical falloff mode: background, edge or repeat")
	prof := flag.Bool("profile", false, "write a CPU profile to the current directory")
	flag.Parse()

	if *infile == "" || *outfile == "" {
		fmt.Printf("both input and output files must be specified\n")
		os.Exit(1)
	}

	if *prof {
		p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
		defer p.Stop()
	}

	horzMode, err := parseMode(*horz)
	if err != nil {
		log.Fatalf("%v", err)
	}
	vertMode, err := parseMode(*vert)
	if err != nil {
		log.Fatalf("%v", err)
	}

	f, err := os.ReadFile(*infile)
	if err != nil {
		log.Errorf("Error opening file: %v\n", err)
		return
	}

	var decoded goimage.Image
	if strings.EqualFold(filepath.Ext(*infile), ".bmp") {
		decoded, err = bmp.Decode(bytes.NewReader(f))
	} else {
		decoded, err = png.Decode(bytes.NewReader(f))
	}
	if err != nil {
		log.Fatalf("Error decoding image: %v", err)
	}

	src, err := wrapImage(decoded)
	if err != nil {
		log.Fatalf("Error wrapping image: %v", err)
	}
	r, err := reader.NewReader(src, nil)
	if err != nil {
		log.Fatalf("Error creating reader: %v", err)
	}
	r.SetFalloffMode(horzMode, vertMode)

	size := src.GetSize()
	m := int32(*margin)
	outW := size.Width + 2*m
	outH := size.Height + 2*m
	tray := image.NewIntTray(outH, outW, 4)

	start := time.Now()
	err = r.GetBlock(util.Point{X: -m, Y: -m}, tray, colour.Int8, colour.RGB, true)
	if err != nil {
		log.Fatalf("Error reading block: %v", err)
	}
	fmt.Printf("reading took %d ms\n", time.Since(start).Milliseconds())

	out := goimage.NewRGBA(goimage.Rect(0, 0, int(outW), int(outH)))
	for i, v := range tray.IntBuffer {
		out.Pix[i] = uint8(v)
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, out); err != nil {
		log.Fatalf("Error encoding png: %v", err)
	}
	if err := os.WriteFile(*outfile, buf.Bytes(), 0666); err != nil {
		log.Fatalf("Error writing file: %v", err)
	}
}

// wrapImage re-expresses a Go image as a MemoryImage: four byte channels
// per pixel, RGBA order, alpha premultiplied, which is exactly the RGBA
// type's own layout.
func wrapImage(src goimage.Image) (*image.MemoryImage, error) {
	bounds := src.Bounds()
	rgba := goimage.NewRGBA(goimage.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, bounds.Min, draw.Src)

	var bufferFormat format.BufferFormat
	bufferFormat.SetIntegerFormat(format.WordByte, 8, 1, format.LittleEndian, colour.RGB, true, false, false)
	size := util.Dimension{Width: int32(bounds.Dx()), Height: int32(bounds.Dy())}
	return image.NewMemoryImage(rgba.Pix, size, bufferFormat)
}
