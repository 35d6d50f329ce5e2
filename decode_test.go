package telepen_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mharwood/telepengo"
	"github.com/mharwood/telepengo/internal/rasterimage"
	"github.com/mharwood/telepengo/internal/rastertest"
)

func TestDecodeRoundTrip(t *testing.T) {
	cases := []string{"0", "12", "123", "0000", "999999999", "4815162342"}
	for _, digits := range cases {
		img, err := rastertest.Build(digits, rastertest.DefaultOptions)
		require.NoError(t, err, "digits=%s", digits)

		got, ok := telepen.Decode(rasterimage.New(img))
		require.True(t, ok, "expected successful decode for %s", digits)
		require.Equal(t, digits, got)
	}
}

func TestDecodeMirroredRow(t *testing.T) {
	img, err := rastertest.Build("5551234", rastertest.DefaultOptions)
	require.NoError(t, err)

	mirrored := rastertest.Mirror(img)
	got, ok := telepen.Decode(rasterimage.New(mirrored))
	require.True(t, ok, "expected decode to succeed on a mirrored row")
	require.Equal(t, "5551234", got)
}

func TestDecodeSingleRowImage(t *testing.T) {
	img, err := rastertest.Build("42", rastertest.Options{NarrowPx: 4, QuietPx: 48, Height: 1})
	require.NoError(t, err)

	got, ok := telepen.Decode(rasterimage.New(img))
	require.True(t, ok)
	require.Equal(t, "42", got)
}

func TestDecodeRejectsCorruption(t *testing.T) {
	// "12" packs to a single pair glyph; corrupt one bar within it (E3/P5).
	codes, err := rastertest.Codes("12")
	require.NoError(t, err)

	elements := rastertest.Elements(codes)

	// elements[0] is the leading element of the Start pattern's own bars;
	// skip past Start to land inside the data glyph before flipping a bar.
	startLen := len(rastertest.Elements([]int{codes[0]}))
	idx := startLen + 1
	require.Less(t, idx, len(elements), "data glyph must contain a mutable element")
	elements[idx] = flipNarrowWide(elements[idx])

	img := rastertest.Render(elements, rastertest.DefaultOptions)
	_, ok := telepen.Decode(rasterimage.New(img))
	require.False(t, ok, "expected corrupted data glyph to fail decoding")
}

func TestDecodeRejectsWrongChecksum(t *testing.T) {
	codes, err := rastertest.Codes("12")
	require.NoError(t, err)

	// Layout is [Start, data..., checksum, Stop]; replace the checksum glyph
	// with TeleTable[27] regardless of what it should be (E4).
	codes[len(codes)-2] = 27

	img := rastertest.Render(rastertest.Elements(codes), rastertest.DefaultOptions)
	_, ok := telepen.Decode(rasterimage.New(img))
	require.False(t, ok, "expected wrong checksum glyph to fail decoding")
}

func flipNarrowWide(e byte) byte {
	if e == 1 {
		return 3
	}
	return 1
}

func TestDecodeNoFalsePositivesOnNoise(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	const width, height = 400, 10

	for i := 0; i < 10000; i++ {
		img := randomNoiseImage(rng, width, height)
		if text, ok := telepen.Decode(img); ok {
			t.Fatalf("iteration %d: unexpected decode %q from random noise", i, text)
		}
	}
}

func randomNoiseImage(rng *rand.Rand, width, height int) *fakeImage {
	pix := make([]byte, width*height*4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := (y*width + x) * 4
			pix[idx] = byte(rng.IntN(256))
			pix[idx+1] = byte(rng.IntN(256))
			pix[idx+2] = byte(rng.IntN(256))
			pix[idx+3] = 255
		}
	}
	return &fakeImage{width: width, height: height, pix: pix}
}

// fakeImage is a minimal telepen.RowImage backed by a flat RGBA buffer, used
// to avoid routing random test data through image.RGBA's stride logic.
type fakeImage struct {
	width, height int
	pix           []byte
}

func (f *fakeImage) Width() int  { return f.width }
func (f *fakeImage) Height() int { return f.height }
func (f *fakeImage) RowPixels(y int) []byte {
	start := y * f.width * 4
	return f.pix[start : start+f.width*4]
}
