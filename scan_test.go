package cubego

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/cubego/coords"
)

func collectAll(t *testing.T, cube *Cube[int]) []Row[int] {
	t.Helper()

	var rows []Row[int]
	for row := range cube.Scan().Rows() {
		rows = append(rows, row)
	}
	return rows
}

func TestScanSliceMatchesTraversalWindow(t *testing.T) {
	cube := priceCube(t)
	full := collectAll(t, cube)

	for start := 0; start <= len(full); start++ {
		for length := 0; length <= len(full)-start; length++ {
			window, err := cube.Scan().Slice(start, length)
			require.NoError(t, err)
			require.Len(t, window, length)
			for i, row := range window {
				assert.True(t, row.Equal(full[start+i]),
					"slice(%d,%d)[%d] differs from traversal", start, length, i)
			}
		}
	}
}

func TestScanSliceClampsLength(t *testing.T) {
	cube := priceCube(t)

	rows, err := cube.Scan().Slice(3, 100)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	rows, err = cube.Scan().Slice(4, 1)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestScanSliceOutOfRange(t *testing.T) {
	cube := priceCube(t)

	tests := []struct {
		name          string
		start, length int
	}{
		{name: "negative start", start: -1, length: 1},
		{name: "negative length", start: 0, length: -1},
		{name: "start beyond total", start: 5, length: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cube.Scan().Slice(tt.start, tt.length)
			var oor *ErrOutOfRange
			require.ErrorAs(t, err, &oor)
			assert.Equal(t, 4, oor.Total)
		})
	}
}

func TestScanEarlyTermination(t *testing.T) {
	cube := priceCube(t)

	var rows []Row[int]
	for row := range cube.Scan().Rows() {
		rows = append(rows, row)
		if len(rows) == 2 {
			break
		}
	}

	require.Len(t, rows, 2)
	full := collectAll(t, cube)
	assert.True(t, rows[0].Equal(full[0]))
	assert.True(t, rows[1].Equal(full[1]))
}

func TestScanFilter(t *testing.T) {
	cube := priceCube(t)

	var rows []Row[int]
	scan := cube.Scan().Filter(func(r Row[int]) bool {
		return r.Attributes["price"].Value >= 10
	})
	for row := range scan.Rows() {
		rows = append(rows, row)
	}

	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.GreaterOrEqual(t, row.Attributes["price"].Value, 10)
	}
}

func TestScanCollect(t *testing.T) {
	cube := priceCube(t)

	rows, err := cube.Scan().Collect(context.Background())
	require.NoError(t, err)

	full := collectAll(t, cube)
	require.Len(t, rows, len(full))
	for i := range rows {
		assert.True(t, rows[i].Equal(full[i]))
	}
}

func TestScanCollectParallel(t *testing.T) {
	cube, err := New[int]().SetMany([]Fact[int]{
		{Coordinates: coords.Coordinates{"a": coords.Int(0)}, Label: "x", Value: 1},
		{Coordinates: coords.Coordinates{"a": coords.Int(1)}, Label: "x", Value: 2},
		{Coordinates: coords.Coordinates{"a": coords.Int(2)}, Label: "x", Value: 3},
		{Coordinates: coords.Coordinates{"b": coords.Int(0)}, Label: "x", Value: 4},
		{Coordinates: coords.Coordinates{"b": coords.Int(1)}, Label: "x", Value: 5},
		{Coordinates: coords.Coordinates{"c": coords.Int(0)}, Label: "y", Value: 6},
		{Coordinates: coords.Coordinates{"c": coords.Int(1)}, Label: "y", Value: 7},
		{Coordinates: coords.Coordinates{"c": coords.Int(2)}, Label: "y", Value: 8},
	})
	require.NoError(t, err)
	require.Equal(t, 18, cube.Count())

	sequential, err := cube.Scan().Collect(context.Background())
	require.NoError(t, err)

	parallel, err := cube.Scan().Parallel(4).Collect(context.Background())
	require.NoError(t, err)

	require.Len(t, parallel, len(sequential))
	for i := range sequential {
		assert.True(t, parallel[i].Equal(sequential[i]), "row %d order not preserved", i)
	}
}

func TestScanCollectCancelled(t *testing.T) {
	cube := priceCube(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := cube.Scan().Collect(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = cube.Scan().Parallel(2).Collect(ctx)
	assert.Error(t, err)
}

func TestScanContains(t *testing.T) {
	cube := priceCube(t)

	for _, row := range collectAll(t, cube) {
		assert.True(t, cube.Scan().Contains(row))
	}
}

func TestScanContainsTampered(t *testing.T) {
	cube := priceCube(t)
	row := collectAll(t, cube)[0]

	tampered := Row[int]{
		Coordinates: row.Coordinates.Clone(),
		Attributes:  map[string]Cell[int]{"price": {Value: 12345, Present: true}},
	}
	assert.False(t, cube.Scan().Contains(tampered))

	absent := Row[int]{
		Coordinates: row.Coordinates.Clone(),
		Attributes:  map[string]Cell[int]{"price": {Present: false}},
	}
	assert.False(t, cube.Scan().Contains(absent))
}

func TestScanContainsForeignCoordinates(t *testing.T) {
	cube := priceCube(t)

	foreign := Row[int]{
		Coordinates: coords.Coordinates{
			"region":  coords.String("MARS"),
			"product": coords.String("A"),
		},
		Attributes: map[string]Cell[int]{"price": {Value: 10, Present: true}},
	}
	assert.False(t, cube.Scan().Contains(foreign))

	partial := Row[int]{
		Coordinates: coords.Coordinates{"product": coords.String("A")},
		Attributes:  map[string]Cell[int]{"price": {Value: 10, Present: true}},
	}
	assert.False(t, cube.Scan().Contains(partial))
}

func TestScanEmptyCube(t *testing.T) {
	cube := New[int]()

	count := 0
	for range cube.Scan().Rows() {
		count++
	}
	assert.Equal(t, 0, count)

	rows, err := cube.Scan().Slice(0, 0)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
