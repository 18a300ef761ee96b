package textrender_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mechazawa/wave-function-collapse/catalogue"
	"github.com/Mechazawa/wave-function-collapse/observer"
	"github.com/Mechazawa/wave-function-collapse/textrender"
)

type fakeView struct {
	w, h      int
	collapsed map[[2]int]*catalogue.Prototype[string]
}

func (v fakeView) Width() int  { return v.w }
func (v fakeView) Height() int { return v.h }
func (v fakeView) Remaining() int {
	return v.w*v.h - len(v.collapsed)
}
func (v fakeView) At(x, y int) *catalogue.Prototype[string] {
	return v.collapsed[[2]int{x, y}]
}

func TestRendererDrawsUndecidedAndCollapsedCells(t *testing.T) {
	a := &catalogue.Prototype[string]{ID: 1, Payload: "A"}
	view := fakeView{w: 2, h: 1, collapsed: map[[2]int]*catalogue.Prototype[string]{
		{0, 0}: a,
	}}

	var buf bytes.Buffer
	r := textrender.New[string](&buf, func(p *catalogue.Prototype[string]) rune {
		return rune(p.Payload[0])
	})

	r.Notify(observer.Event[string]{Kind: observer.Progress, View: view})

	require.Equal(t, "A.\n\n", buf.String())
}

func TestSettledRegionsGroupsAdjacentCollapsedCells(t *testing.T) {
	a := &catalogue.Prototype[string]{ID: 1, Payload: "A"}
	view := fakeView{w: 3, h: 1, collapsed: map[[2]int]*catalogue.Prototype[string]{
		{0, 0}: a,
		{1, 0}: a,
		// (2,0) left undecided, so it's a separate, empty region boundary.
	}}

	regions := textrender.SettledRegions[string](view)
	require.Len(t, regions, 1)
	require.Len(t, regions[0], 2)
}

func TestSettledRegionsSplitsDisconnectedCollapsedCells(t *testing.T) {
	a := &catalogue.Prototype[string]{ID: 1, Payload: "A"}
	view := fakeView{w: 3, h: 1, collapsed: map[[2]int]*catalogue.Prototype[string]{
		{0, 0}: a,
		{2, 0}: a,
	}}

	regions := textrender.SettledRegions[string](view)
	require.Len(t, regions, 2)
}
