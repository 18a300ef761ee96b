package configtiles

import (
	"bytes"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/Mechazawa/wave-function-collapse/catalogue"
	"github.com/Mechazawa/wave-function-collapse/direction"
)

// Entry is one `{image, slots}` record from the JSON adjacency
// description. Slots is ordered [up, right, down, left].
type Entry struct {
	Image string   `json:"image"`
	Slots []string `json:"slots"`
}

// ParseEntries decodes a JSON array of Entry from r.
func ParseEntries(r io.Reader) ([]Entry, error) {
	var entries []Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("configtiles: decode: %w", err)
	}
	for _, e := range entries {
		if len(e.Slots) != direction.Count {
			return nil, fmt.Errorf("%w: %q has %d", ErrSlotCount, e.Image, len(e.Slots))
		}
	}
	return entries, nil
}

type loadedTile struct {
	entry Entry
	id    catalogue.Identifier
	img   image.Image
}

// BuildCatalogue loads the image referenced by each entry (relative to
// baseDir) and derives a catalogue whose adjacency comes from slot-string
// matching: prototype a admits prototype b in direction d iff
// a.Slots[d] == reverse(b.Slots[d.Invert()]).
//
// Complexity: O(n^2 * d) where n is the entry count and d = direction.Count.
func BuildCatalogue(entries []Entry, baseDir string) (*catalogue.Catalogue[image.Image], error) {
	tiles := make([]loadedTile, len(entries))
	for i, e := range entries {
		data, err := os.ReadFile(filepath.Join(baseDir, e.Image))
		if err != nil {
			return nil, fmt.Errorf("configtiles: read %q: %w", e.Image, err)
		}

		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("configtiles: decode %q: %w", e.Image, err)
		}

		h := fnv.New64a()
		h.Write(data)
		tiles[i] = loadedTile{entry: e, id: catalogue.Identifier(h.Sum64()), img: img}
	}

	prototypes := make([]*catalogue.Prototype[image.Image], len(tiles))
	for i, t := range tiles {
		var neighbours direction.Neighbors[catalogue.IDSet]
		for _, d := range direction.All {
			set := catalogue.IDSet{}
			for _, other := range tiles {
				if t.entry.Slots[d] == reverseString(other.entry.Slots[d.Invert()]) {
					set[other.id] = struct{}{}
				}
			}
			neighbours.Set(d, set)
		}

		prototypes[i] = &catalogue.Prototype[image.Image]{
			ID:         t.id,
			Payload:    t.img,
			Weight:     1,
			Neighbours: neighbours,
		}
	}

	return catalogue.NewCatalogue(prototypes)
}

func reverseString(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
