package imagetiles

import (
	"encoding/binary"
	"hash/fnv"
	"image"
	"image/draw"
	"sort"

	"github.com/Mechazawa/wave-function-collapse/catalogue"
	"github.com/Mechazawa/wave-function-collapse/direction"
)

// Warning reports a prototype whose observed neighbour-direction count is
// not exactly direction.Count, i.e. it was only ever seen at an image
// edge or corner.
type Warning struct {
	ID             catalogue.Identifier
	NeighbourCount int
}

// Options configures catalogue construction from an image.
type Options struct {
	// DropIncomplete removes tiles with an incomplete neighbour set from
	// the returned catalogue instead of merely warning about them.
	DropIncomplete bool
}

type draft struct {
	id         catalogue.Identifier
	payload    image.Image
	weight     uint32
	neighbours direction.Neighbors[catalogue.IDSet]
}

// BuildCatalogue slices img into a gridWidth x gridHeight tile grid, each
// cell tileWidth = img width / gridWidth pixels wide (tileHeight
// analogous), and derives a catalogue of unique tiles by exact pixel
// equality. Neighbours[d] accumulates, over every occurrence of a tile in
// the source image, the ids observed immediately in direction d.
//
// Complexity: O(gridWidth * gridHeight * tileWidth * tileHeight).
func BuildCatalogue(img image.Image, gridWidth, gridHeight int, opts Options) (*catalogue.Catalogue[image.Image], []Warning, error) {
	if gridWidth < 1 || gridHeight < 1 {
		return nil, nil, ErrInvalidGridSize
	}

	bounds := img.Bounds()
	imgW, imgH := bounds.Dx(), bounds.Dy()
	tileW, tileH := imgW/gridWidth, imgH/gridHeight
	if tileW < 1 || tileH < 1 {
		return nil, nil, ErrImageTooSmall
	}

	ids := make([]catalogue.Identifier, gridWidth*gridHeight)
	unique := make(map[catalogue.Identifier]*draft)
	at := func(x, y int) int { return y*gridWidth + x }

	for y := 0; y < gridHeight; y++ {
		for x := 0; x < gridWidth; x++ {
			patch := extractTile(img, bounds.Min.X+x*tileW, bounds.Min.Y+y*tileH, tileW, tileH)
			id := hashTile(patch)
			ids[at(x, y)] = id

			d, ok := unique[id]
			if !ok {
				d = &draft{id: id, payload: patch}
				unique[id] = d
			}
			d.weight++
		}
	}

	for y := 0; y < gridHeight; y++ {
		for x := 0; x < gridWidth; x++ {
			d := unique[ids[at(x, y)]]
			for _, dir := range direction.All {
				dx, dy := dir.Offset()
				nx, ny := x+dx, y+dy
				if nx < 0 || nx >= gridWidth || ny < 0 || ny >= gridHeight {
					continue
				}

				set := d.neighbours.Get(dir)
				if set == nil {
					set = catalogue.IDSet{}
				}
				set[ids[at(nx, ny)]] = struct{}{}
				d.neighbours.Set(dir, set)
			}
		}
	}

	var warnings []Warning
	prototypes := make([]*catalogue.Prototype[image.Image], 0, len(unique))
	for _, d := range unique {
		present := 0
		for _, dir := range direction.All {
			if len(d.neighbours.Get(dir)) > 0 {
				present++
			}
		}

		if present != direction.Count {
			warnings = append(warnings, Warning{ID: d.id, NeighbourCount: present})
			if opts.DropIncomplete {
				continue
			}
		}

		prototypes = append(prototypes, &catalogue.Prototype[image.Image]{
			ID:         d.id,
			Payload:    d.payload,
			Weight:     d.weight,
			Neighbours: d.neighbours,
		})
	}

	sort.Slice(prototypes, func(i, j int) bool { return prototypes[i].ID < prototypes[j].ID })
	sort.Slice(warnings, func(i, j int) bool { return warnings[i].ID < warnings[j].ID })

	cat, err := catalogue.NewCatalogue(prototypes)
	if err != nil {
		return nil, warnings, err
	}
	return cat, warnings, nil
}

func extractTile(img image.Image, x0, y0, w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), img, image.Pt(x0, y0), draw.Src)
	return dst
}

// hashTile derives a stable Identifier from a tile's exact pixel values.
func hashTile(tile image.Image) catalogue.Identifier {
	h := fnv.New64a()
	b := tile.Bounds()
	var buf [8]byte

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := tile.At(x, y).RGBA()
			binary.BigEndian.PutUint16(buf[0:2], uint16(r))
			binary.BigEndian.PutUint16(buf[2:4], uint16(g))
			binary.BigEndian.PutUint16(buf[4:6], uint16(bl))
			binary.BigEndian.PutUint16(buf[6:8], uint16(a))
			h.Write(buf[:])
		}
	}

	return catalogue.Identifier(h.Sum64())
}
