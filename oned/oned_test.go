package oned_test

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mharwood/telepengo/internal/rasterimage"
	"github.com/mharwood/telepengo/internal/rastertest"
	"github.com/mharwood/telepengo/oned"
)

func TestTelepenReaderDecodeRow(t *testing.T) {
	img, err := rastertest.Build("314159", rastertest.DefaultOptions)
	require.NoError(t, err)

	reader := oned.NewTelepenReader()
	result, err := reader.DecodeRow(rasterimage.New(img), &oned.DecodeOptions{})
	require.NoError(t, err)
	require.Equal(t, "314159", result.Text)
	require.Equal(t, oned.FormatTelepen, result.Format)
}

func TestTelepenReaderNotFound(t *testing.T) {
	blank := image.NewRGBA(image.Rect(0, 0, 200, 10))
	draw.Draw(blank, blank.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)

	reader := oned.NewTelepenReader()
	_, err := reader.DecodeRow(rasterimage.New(blank), &oned.DecodeOptions{})
	require.ErrorIs(t, err, oned.ErrNotFound, "a blank row has no barcode to find")
}

func TestMultiFormatReaderDispatchesToTelepen(t *testing.T) {
	img, err := rastertest.Build("88", rastertest.DefaultOptions)
	require.NoError(t, err)

	reader := oned.NewMultiFormatReader(&oned.DecodeOptions{})
	result, err := reader.DecodeRow(rasterimage.New(img), &oned.DecodeOptions{})
	require.NoError(t, err)
	require.Equal(t, "88", result.Text)
}
