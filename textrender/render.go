package textrender

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/Mechazawa/wave-function-collapse/catalogue"
	"github.com/Mechazawa/wave-function-collapse/observer"
)

// RenderFunc maps a collapsed prototype to the rune drawn for its cell.
type RenderFunc[T any] func(p *catalogue.Prototype[T]) rune

// Renderer is a terminal Observer. It draws the grid to Out after every
// Progress and Completed event and logs a one-line summary through Log.
type Renderer[T any] struct {
	Out    io.Writer
	Render RenderFunc[T]
	Log    zerolog.Logger

	// Undecided is drawn for a cell that has not yet collapsed.
	Undecided rune
}

// New builds a Renderer with sensible defaults: '.' for undecided cells
// and a disabled (no-op) logger.
func New[T any](out io.Writer, render RenderFunc[T]) *Renderer[T] {
	return &Renderer[T]{
		Out:       out,
		Render:    render,
		Log:       zerolog.Nop(),
		Undecided: '.',
	}
}

// Notify implements observer.Observer.
func (r *Renderer[T]) Notify(e observer.Event[T]) {
	switch e.Kind {
	case observer.Started:
		r.Log.Info().Int("width", e.View.Width()).Int("height", e.View.Height()).Msg("solve started")
	case observer.Progress:
		r.draw(e.View)
		r.Log.Debug().Int("remaining", e.View.Remaining()).Msg("progress")
	case observer.Completed:
		r.draw(e.View)
		r.Log.Info().Msg("solve completed")
	}
}

func (r *Renderer[T]) draw(view observer.GridView[T]) {
	for y := 0; y < view.Height(); y++ {
		for x := 0; x < view.Width(); x++ {
			p := view.At(x, y)
			if p == nil {
				fmt.Fprintf(r.Out, "%c", r.Undecided)
				continue
			}
			fmt.Fprintf(r.Out, "%c", r.Render(p))
		}
		fmt.Fprintln(r.Out)
	}
	fmt.Fprintln(r.Out)
}
