package dfs_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/bfs"
	"github.com/katalvlaran/lvmaze/core"
	"github.com/katalvlaran/lvmaze/dfs"
	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/maze"
)

// carved returns a perfect side×side maze.
func carved(t testing.TB, side int, seed int64) *gridgraph.Grid {
	t.Helper()
	gr, err := gridgraph.NewMaze(side)
	require.NoError(t, err)
	_, err = maze.Generate(gr.Graph, 0, maze.WithSeed(seed))
	require.NoError(t, err)
	return gr
}

func explored(cells ...int) []dfs.Event {
	out := make([]dfs.Event, 0, len(cells))
	for _, c := range cells {
		out = append(out, dfs.Event{Cell: c, Kind: dfs.KindExplored})
	}
	return out
}

func onPath(cells ...int) []dfs.Event {
	out := make([]dfs.Event, 0, len(cells))
	for _, c := range cells {
		out = append(out, dfs.Event{Cell: c, Kind: dfs.KindPath})
	}
	return out
}

// TestFindPath_SingleCell: start == end on a 1×1 grid.
func TestFindPath_SingleCell(t *testing.T) {
	gr, err := gridgraph.NewMaze(1)
	require.NoError(t, err)

	res, err := dfs.FindPath(gr.Graph, 0, 0)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []int{0}, res.Explored)
	assert.Equal(t, []int{0}, res.Path)
	assert.Equal(t, append(explored(0), onPath(0)...), res.Events)
}

// TestFindPath_DeadEnd walks into a dead end before finding the exit.
//
//	0 ─ 1
//	│   │
//	2   3
func TestFindPath_DeadEnd(t *testing.T) {
	gr, err := gridgraph.NewMaze(2)
	require.NoError(t, err)
	require.NoError(t, gr.Graph.OpenPassage(0, 1))
	require.NoError(t, gr.Graph.OpenPassage(1, 3))
	require.NoError(t, gr.Graph.OpenPassage(0, 2))

	res, err := dfs.FindPath(gr.Graph, 0, 3)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []int{0, 2, 1, 3}, res.Explored)
	assert.Equal(t, []int{0, 1, 3}, res.Path)

	want := append(explored(0, 2, 1, 3), onPath(0, 1, 3)...)
	assert.Equal(t, want, res.Events)
	for _, ev := range res.Events[4:] {
		assert.True(t, ev.IsFinalPath())
	}
}

// TestFindPath_Unreachable: walls everywhere end in a single Unreachable event.
func TestFindPath_Unreachable(t *testing.T) {
	gr, err := gridgraph.NewMaze(2)
	require.NoError(t, err)

	res, err := dfs.FindPath(gr.Graph, 0, 3)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
	assert.Equal(t, []dfs.Event{
		{Cell: 0, Kind: dfs.KindExplored},
		{Cell: 3, Kind: dfs.KindUnreachable},
	}, res.Events)
}

// TestFindPath_IsolatedCell: a cell with no records cannot be found.
func TestFindPath_IsolatedCell(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, g.PushVertex(i, core.LabelNone))
	}
	require.NoError(t, g.PushEdge(0, 1, core.Closed))
	require.NoError(t, g.PushEdge(1, 0, core.Closed))
	_, err = maze.Generate(g, 0)
	require.NoError(t, err)

	res, err := dfs.FindPath(g, 0, 2)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, []int{0, 1}, res.Explored)
	last := res.Events[len(res.Events)-1]
	assert.Equal(t, dfs.Event{Cell: 2, Kind: dfs.KindUnreachable}, last)
}

// TestFindPath_PerfectMazes checks path validity and equality with the BFS path.
func TestFindPath_PerfectMazes(t *testing.T) {
	for _, side := range []int{2, 3, 5, 10} {
		side := side
		t.Run(fmt.Sprintf("side=%d", side), func(t *testing.T) {
			gr := carved(t, side, int64(side))
			v := gr.Graph.View()
			start, end := 0, side*side-1

			res, err := dfs.FindPath(v, start, end)
			require.NoError(t, err)
			require.True(t, res.Found)

			require.NotEmpty(t, res.Path)
			assert.Equal(t, start, res.Path[0])
			assert.Equal(t, end, res.Path[len(res.Path)-1])
			for i := 1; i < len(res.Path); i++ {
				assert.True(t, v.IsOpen(res.Path[i-1], res.Path[i]), "step %d", i)
			}

			b, err := bfs.BFS(v, start)
			require.NoError(t, err)
			want, err := b.PathTo(end)
			require.NoError(t, err)
			assert.Equal(t, want, res.Path)

			seen := map[int]bool{}
			for _, c := range res.Explored {
				assert.True(t, b.Reached(c))
				assert.False(t, seen[c], "cell %d explored twice", c)
				seen[c] = true
			}
			assert.Equal(t, end, res.Explored[len(res.Explored)-1])
			assert.Len(t, res.Events, len(res.Explored)+len(res.Path))
		})
	}
}

// TestFindPath_Errors covers nil graph, missing endpoints and bad options.
func TestFindPath_Errors(t *testing.T) {
	_, err := dfs.FindPath(nil, 0, 0)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	gr, err := gridgraph.NewMaze(2)
	require.NoError(t, err)
	_, err = dfs.FindPath(gr.Graph, 4, 0)
	assert.ErrorIs(t, err, dfs.ErrStartNotFound)
	_, err = dfs.FindPath(gr.Graph, 0, -1)
	assert.ErrorIs(t, err, dfs.ErrEndNotFound)

	for _, opt := range []dfs.Option{
		dfs.WithStepDelay(-time.Millisecond),
		dfs.WithSettleDelay(-time.Millisecond),
		dfs.WithPathDelay(-time.Millisecond),
		dfs.WithBuffer(-1),
	} {
		_, err = dfs.FindPath(gr.Graph, 0, 3, opt)
		assert.ErrorIs(t, err, dfs.ErrOptionViolation)
		_, err = dfs.Stream(gr.Graph, 0, 3, opt)
		assert.ErrorIs(t, err, dfs.ErrOptionViolation)
	}
}

// TestFindPath_OnEvent: the hook sees exactly the recorded events.
func TestFindPath_OnEvent(t *testing.T) {
	gr := carved(t, 4, 3)
	var got []dfs.Event
	res, err := dfs.FindPath(gr.Graph, 0, 15, dfs.WithOnEvent(func(ev dfs.Event) { got = append(got, ev) }))
	require.NoError(t, err)
	assert.Equal(t, res.Events, got)
}

// TestFindPath_SettleDelay: the settle pause happens before the replay.
func TestFindPath_SettleDelay(t *testing.T) {
	gr, err := gridgraph.NewMaze(1)
	require.NoError(t, err)
	begin := time.Now()
	_, err = dfs.FindPath(gr.Graph, 0, 0, dfs.WithSettleDelay(20*time.Millisecond))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(begin), 20*time.Millisecond)
}

// TestFindPath_Cancelled returns the context error.
func TestFindPath_Cancelled(t *testing.T) {
	gr := carved(t, 5, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := dfs.FindPath(gr.Graph, 0, 24, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Events)
}
