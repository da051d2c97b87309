package chart

import (
	"bytes"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crisprCutting/pkg/summary"
)

var breakdowns = []summary.Breakdown{
	{Sample: "A1", Guide: "Trp53", WT: 50, InFrame: 30, FS: 20},
	{Sample: "A2", Guide: "Trp53", WT: 10, InFrame: 5, FS: 85},
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#b30000")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xb3, A: 255}, c)

	c, err = ParseHexColor("0d88e6")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x0d, G: 0x88, B: 0xe6, A: 255}, c)

	for _, bad := range []string{"", "#fff", "#gggggg"} {
		_, err = ParseHexColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestNew(t *testing.T) {
	p, _, err := New(breakdowns, Palette)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Y.Min)
	assert.Equal(t, 105.0, p.Y.Max)

	_, _, err = New(nil, Palette)
	assert.Error(t, err)
	_, _, err = New(breakdowns, Palette[:2])
	assert.Error(t, err)
}

func TestMultiGuide(t *testing.T) {
	assert.False(t, multiGuide(breakdowns))
	assert.True(t, multiGuide(append(breakdowns, summary.Breakdown{Sample: "A1", Guide: "Atm"})))
}

func TestStackedBar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CRISPRCutting Analysis.png")
	require.NoError(t, StackedBar(path, breakdowns, Options{DPI: 72}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("\x89PNG\r\n\x1a\n")))
}

func TestStackedBarDefaultSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CRISPRCutting Analysis.png")
	require.NoError(t, StackedBar(path, breakdowns, Options{}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	// 10 x 6 inches at 600 DPI
	assert.Equal(t, 6000, cfg.Width)
	assert.Equal(t, 3600, cfg.Height)
}
