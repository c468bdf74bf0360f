package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/gravitas-games/gridventory/internal/config"
)

const replayYAML = `
grid: {width: 3, height: 2}
placement: {separation: 1}
items:
  - {name: Field Projector, width: 2, height: 1}
  - {name: Energy Cell Pack, width: 1, height: 1}
script:
  - aim: {x: 1, y: 0, z: 0.5}
    place: true
  - aim: {x: 2.5, y: 0, z: 1.5}
`

func TestRunReplaysScript(t *testing.T) {
	cfg, err := config.Parse([]byte(replayYAML))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(cfg, zaptest.NewLogger(t), &out, true))

	got := out.String()
	assert.Contains(t, got, "frame 0: placed Field Projector")
	assert.Contains(t, got, "frame 1: hovering (2,1) with Energy Cell Pack")
	assert.Contains(t, got, "..+\nAA.\n")
	assert.Contains(t, got, "final (1 placed, 1 pending):\n...\nAA.\n")
}

func TestCatalogKeepsConfiguredOrder(t *testing.T) {
	items := catalog([]config.ItemConfig{
		{Name: "first", Width: 1, Height: 1},
		{Name: "second", Width: 2, Height: 1, Category: "module"},
	}, zaptest.NewLogger(t))
	require.Len(t, items, 2)
	assert.Equal(t, "first", items[1].Name)
	assert.Equal(t, "module", items[0].Category)
}

func TestCatalogSkipsInvalidItems(t *testing.T) {
	items := catalog([]config.ItemConfig{
		{Name: "kept", Width: 1, Height: 1},
		{Name: "", Width: 1, Height: 1},
		{Name: "flat", Width: 0, Height: 2},
	}, zaptest.NewLogger(t))
	require.Len(t, items, 1)
	assert.Equal(t, "kept", items[0].Name)
}
