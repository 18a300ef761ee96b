package main

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFlagsRequiresInput(t *testing.T) {
	_, err := parseFlags([]string{"-width", "4"})
	require.Error(t, err)
}

func TestParseFlagsAppliesDefaults(t *testing.T) {
	c, err := parseFlags([]string{"-input", "tiles.json"})
	require.NoError(t, err)
	require.Equal(t, "tiles.json", c.input)
	require.Equal(t, 20, c.width)
	require.Equal(t, 20, c.height)
	require.Equal(t, 1_000_000, c.maxTicks)
}

// TestRunSolvesAndWritesImage builds a two-tile config catalogue (each
// tile only ever admits itself as a neighbour on every side), runs the
// full driver against it, and checks a result image is written.
func TestRunSolvesAndWritesImage(t *testing.T) {
	dir := t.TempDir()
	writeSolidPNG(t, filepath.Join(dir, "grass.png"), color.RGBA{34, 139, 34, 255})
	writeSolidPNG(t, filepath.Join(dir, "dirt.png"), color.RGBA{139, 69, 19, 255})

	// Neither tile's slot matches the other's reversed slot, so once the
	// first cell collapses the rest of the grid is forced to the same
	// tile: this exercises propagation, not just a single trivial cell.
	entries := []map[string]any{
		{"image": "grass.png", "slots": []string{"a", "a", "a", "a"}},
		{"image": "dirt.png", "slots": []string{"b", "b", "b", "b"}},
	}
	cfgPath := filepath.Join(dir, "tiles.json")
	writeJSON(t, cfgPath, entries)

	outPath := filepath.Join(dir, "result.png")

	err := run([]string{
		"-input", cfgPath,
		"-width", "3",
		"-height", "3",
		"-seed", "42",
		"-output", outPath,
	}, &bytes.Buffer{})
	require.NoError(t, err)

	_, err = os.Stat(outPath)
	require.NoError(t, err)

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 12, img.Bounds().Dx())
	require.Equal(t, 12, img.Bounds().Dy())
}

func TestRunRejectsMissingInputSizeForImage(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "source.png")
	writeSolidPNG(t, imgPath, color.RGBA{10, 20, 30, 255})

	err := run([]string{"-input", imgPath, "-width", "2", "-height", "2"}, &bytes.Buffer{})
	require.Error(t, err)
}

func writeSolidPNG(t *testing.T, path string, c color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func writeJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
}
