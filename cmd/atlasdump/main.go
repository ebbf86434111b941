// Command atlasdump builds a glyph atlas from input text and dumps its
// utilization for inspection: a per-page summary on stdout and, with
// -preview, one PNG per page showing occupied versus free space.
//
// Flag defaults can be placed in a .env file (ATLASDUMP_PAGE_SIZE,
// ATLASDUMP_TEXT, ATLASDUMP_FONT), which is loaded before flags parse.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/gogpu/glyphatlas"
	"github.com/gogpu/glyphatlas/raster"
	"golang.org/x/image/font/gofont/goregular"
)

func main() {
	loadEnv()

	var (
		pageSize = flag.Int("page", envInt("ATLASDUMP_PAGE_SIZE", 256), "page size in pixels (square)")
		padding  = flag.Int("padding", 1, "padding between glyphs in pixels")
		strategy = flag.String("strategy", "shelf", "allocator strategy: shelf or slab")
		cellSize = flag.Int("cell", 0, "slab cell size in pixels (0 = infer from first glyph)")
		size     = flag.Float64("size", 16, "font size in points")
		text     = flag.String("text", envStr("ATLASDUMP_TEXT", defaultText), "text to cache")
		fontPath = flag.String("font", envStr("ATLASDUMP_FONT", ""), "TTF font file (default: Go Regular)")
		preview  = flag.Bool("preview", false, "write page-N.png usage previews")
		shaped   = flag.Bool("shaped", false, "use the HarfBuzz-shaped rasterizer")
	)
	flag.Parse()

	cfg := glyphatlas.DefaultConfig()
	cfg.PageWidth = *pageSize
	cfg.PageHeight = *pageSize
	cfg.Padding = *padding
	switch *strategy {
	case "shelf":
		cfg.NewAllocator = glyphatlas.ShelfAllocators()
	case "slab":
		cfg.NewAllocator = glyphatlas.SlabAllocators(*cellSize, *cellSize)
	default:
		log.Fatalf("unknown strategy %q", *strategy)
	}

	atlas, err := glyphatlas.New(cfg)
	if err != nil {
		log.Fatalf("create atlas: %v", err)
	}

	rast, err := newRasterizer(*fontPath, *shaped, *size)
	if err != nil {
		log.Fatalf("create rasterizer: %v", err)
	}

	for _, r := range *text {
		if _, err := atlas.GetGlyph(rast, string(r), 0); err != nil {
			log.Fatalf("place %q: %v", r, err)
		}
	}

	fmt.Print(atlas.Info())

	if *preview {
		for _, page := range atlas.Pages() {
			name := fmt.Sprintf("page-%d.png", page.Index())
			if err := writePNG(name, page); err != nil {
				log.Fatalf("write %s: %v", name, err)
			}
			log.Printf("wrote %s", name)
		}
	}
}

const defaultText = "the quick brown fox jumps over the lazy dog " +
	"THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG 0123456789"

func newRasterizer(fontPath string, shaped bool, size float64) (glyphatlas.Rasterizer, error) {
	data := goregular.TTF
	if fontPath != "" {
		var err error
		data, err = os.ReadFile(fontPath)
		if err != nil {
			return nil, err
		}
	}

	if shaped {
		r, err := raster.NewShaped(data)
		if err != nil {
			return nil, err
		}
		return r, r.RegisterStyle(0, raster.Style{Size: size})
	}
	r, err := raster.NewFace(data)
	if err != nil {
		return nil, err
	}
	return r, r.RegisterStyle(0, raster.Style{Size: size})
}

func writePNG(name string, page *glyphatlas.Page) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, page.UsagePreview())
}

// loadEnv loads flag defaults from .env if present. Missing files are
// fine; malformed ones are worth a warning.
func loadEnv() {
	if _, err := os.Stat(".env"); err != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: load .env: %v", err)
	}
}

func envStr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("warning: %s=%q is not an integer, using %d", name, v, fallback)
		return fallback
	}
	return n
}
