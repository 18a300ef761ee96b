// Command wfcgen drives the wave function collapse solver end to end:
// it loads a tile catalogue from an image or a JSON adjacency
// description, runs catalogvalidate diagnostics, solves the grid while
// fanning progress out to a terminal renderer (and optionally a live
// websocket view), and writes the composited result image.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/Mechazawa/wave-function-collapse/catalogue"
	"github.com/Mechazawa/wave-function-collapse/catalogvalidate"
	"github.com/Mechazawa/wave-function-collapse/configtiles"
	"github.com/Mechazawa/wave-function-collapse/grid"
	"github.com/Mechazawa/wave-function-collapse/gridgraph"
	"github.com/Mechazawa/wave-function-collapse/imagetiles"
	"github.com/Mechazawa/wave-function-collapse/liveobserver"
	"github.com/Mechazawa/wave-function-collapse/observer"
	"github.com/Mechazawa/wave-function-collapse/superstate"
	"github.com/Mechazawa/wave-function-collapse/textrender"
	"github.com/Mechazawa/wave-function-collapse/wave"
)

type config struct {
	input     string
	inputSize int
	width     int
	height    int
	output    string
	seed      int64
	maxTicks  int
	live      bool
	liveAddr  string
	verbose   bool
}

func parseFlags(args []string) (config, error) {
	fs := flag.NewFlagSet("wfcgen", flag.ContinueOnError)

	c := config{}
	fs.StringVar(&c.input, "input", "", "path to a source image or a JSON tile config")
	fs.IntVar(&c.inputSize, "input-size", 0, "grid size to slice the source image into (image input only)")
	fs.IntVar(&c.width, "width", 20, "output grid width, in tiles")
	fs.IntVar(&c.height, "height", 20, "output grid height, in tiles")
	fs.StringVar(&c.output, "output", "", "path to write the composited result PNG (optional)")
	fs.Int64Var(&c.seed, "seed", 0, "RNG seed; 0 derives one from the current time")
	fs.IntVar(&c.maxTicks, "max-ticks", 1_000_000, "abort with a diagnostic dump after this many ticks")
	fs.BoolVar(&c.live, "live", false, "serve a live websocket view of the solve")
	fs.StringVar(&c.liveAddr, "live-addr", ":8080", "address for the live websocket view")
	fs.BoolVar(&c.verbose, "verbose", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if c.input == "" {
		return config{}, fmt.Errorf("wfcgen: -input is required")
	}
	return c, nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		zerolog.New(os.Stderr).With().Timestamp().Logger().Error().Err(err).Msg("wfcgen failed")
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	c, err := parseFlags(args)
	if err != nil {
		return err
	}

	level := zerolog.InfoLevel
	if c.verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	if c.seed == 0 {
		c.seed = time.Now().UnixNano()
	}

	cat, warnings, err := loadCatalogue(c)
	if err != nil {
		return fmt.Errorf("wfcgen: load catalogue: %w", err)
	}
	for _, w := range warnings {
		log.Warn().Uint64("id", uint64(w.ID)).Int("neighbour_count", w.NeighbourCount).
			Msg("prototype has an incomplete neighbour set")
	}

	for _, v := range cat.CheckSymmetry() {
		log.Warn().Uint64("a", uint64(v.A)).Uint64("b", uint64(v.B)).Str("direction", v.Direction.String()).
			Msg("adjacency symmetry violation")
	}

	if catalogvalidate.Fragmented(cat) {
		components := catalogvalidate.ConnectedComponents(cat)
		log.Warn().Int("components", len(components)).
			Msg("catalogue compatibility graph is fragmented, solve may dead-end")
	}

	w, err := newWave(cat, c.width, c.height, c.seed)
	if err != nil {
		return fmt.Errorf("wfcgen: build wave: %w", err)
	}

	renderer := textrender.New[image.Image](out, tileGlyph)
	renderer.Log = log
	obs := observer.Multi[image.Image]{renderer}

	var hub *liveobserver.Hub[image.Image]
	if c.live {
		hub = liveobserver.NewHub[image.Image]()
		obs = append(obs, hub)

		srv := &http.Server{Addr: c.liveAddr, Handler: liveobserver.Handler(hub)}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error().Err(err).Msg("live view server stopped")
			}
		}()
		log.Info().Str("addr", c.liveAddr).Msg("live view listening")
	}

	obs.Notify(observer.Event[image.Image]{Kind: observer.Started, View: w})

	for ticks := 0; !w.Done(); ticks++ {
		if ticks >= c.maxTicks {
			dumpStuckDiagnostics(log, cat, w)
			return fmt.Errorf("wfcgen: exceeded max-ticks (%d) without settling", c.maxTicks)
		}

		pos := w.TickOnce()
		obs.Notify(observer.Event[image.Image]{Kind: observer.Progress, Position: pos, View: w})
	}

	obs.Notify(observer.Event[image.Image]{Kind: observer.Completed, View: w})

	if c.output != "" {
		if err := writeOutputImage(c.output, w); err != nil {
			return fmt.Errorf("wfcgen: write output: %w", err)
		}
		log.Info().Str("path", c.output).Msg("wrote result image")
	}

	return nil
}

// loadCatalogue dispatches on the -input file's content: a decodable
// image builds a catalogue by slicing it into input-size x input-size
// tiles; anything else is parsed as a JSON tile config.
func loadCatalogue(c config) (*catalogue.Catalogue[image.Image], []imagetiles.Warning, error) {
	data, err := os.ReadFile(c.input)
	if err != nil {
		return nil, nil, err
	}

	if img, _, decodeErr := image.Decode(bytes.NewReader(data)); decodeErr == nil {
		if c.inputSize < 1 {
			return nil, nil, fmt.Errorf("wfcgen: -input-size is required for an image input")
		}
		return imagetiles.BuildCatalogue(img, c.inputSize, c.inputSize, imagetiles.Options{})
	}

	entries, err := configtiles.ParseEntries(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("not a decodable image and not a valid tile config: %w", err)
	}
	cat, err := configtiles.BuildCatalogue(entries, filepathDir(c.input))
	return cat, nil, err
}

func filepathDir(p string) string {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] == '/' {
			return p[:i]
		}
	}
	return "."
}

// newWave builds a Wave whose every cell starts with every prototype in
// cat possible.
func newWave(cat *catalogue.Catalogue[image.Image], width, height int, seed int64) (*wave.Wave[image.Image], error) {
	initial := grid.New(width, height, func(x, y int) *superstate.SuperState[image.Image] {
		return superstate.New(cat.Prototypes())
	})
	return wave.New(initial, seed)
}

// tileGlyph renders a collapsed prototype as a single rune keyed off its
// identifier, cycling through a small palette so distinct tiles are
// visually distinguishable in a terminal.
func tileGlyph(p *catalogue.Prototype[image.Image]) rune {
	palette := []rune("#@%*+=-:.")
	return palette[uint64(p.ID)%uint64(len(palette))]
}

// dumpStuckDiagnostics logs the catalogue's compatibility components and,
// via gridgraph, the connected regions of still-uncollapsed cells, to
// help a user work out why the solve could not finish within budget.
func dumpStuckDiagnostics(log zerolog.Logger, cat *catalogue.Catalogue[image.Image], w *wave.Wave[image.Image]) {
	for i, comp := range catalogvalidate.ConnectedComponents(cat) {
		log.Error().Int("component", i).Int("size", len(comp)).Msg("compatibility component")
	}

	width, height := w.Width(), w.Height()
	values := make([][]int, height)
	for y := 0; y < height; y++ {
		values[y] = make([]int, width)
		for x := 0; x < width; x++ {
			if w.At(x, y) == nil {
				values[y][x] = 1
			}
		}
	}

	gg, err := gridgraph.NewGridGraph(values, gridgraph.DefaultGridOptions())
	if err != nil {
		log.Error().Err(err).Msg("could not build stuck-region diagnostic")
		return
	}
	for value, comps := range gg.ConnectedComponents() {
		if value == 0 {
			continue
		}
		for i, comp := range comps {
			log.Error().Int("region", i).Int("size", len(comp)).Msg("uncollapsed region")
		}
	}
}

// writeOutputImage composites every collapsed cell's tile payload into a
// single PNG, assuming every prototype's payload shares one tile size.
func writeOutputImage(path string, w *wave.Wave[image.Image]) error {
	width, height := w.Width(), w.Height()

	first := firstCollapsedPayload(w)
	if first == nil {
		return fmt.Errorf("wfcgen: grid did not fully settle, nothing to write")
	}
	tileW, tileH := first.Bounds().Dx(), first.Bounds().Dy()

	dst := image.NewRGBA(image.Rect(0, 0, width*tileW, height*tileH))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := w.At(x, y)
			if p == nil {
				continue
			}
			dstRect := image.Rect(x*tileW, y*tileH, (x+1)*tileW, (y+1)*tileH)
			draw.Draw(dst, dstRect, p.Payload, p.Payload.Bounds().Min, draw.Src)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, dst)
}

func firstCollapsedPayload(w *wave.Wave[image.Image]) image.Image {
	for y := 0; y < w.Height(); y++ {
		for x := 0; x < w.Width(); x++ {
			if p := w.At(x, y); p != nil {
				return p.Payload
			}
		}
	}
	return nil
}
