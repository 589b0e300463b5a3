package icons

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
)

func TestGet_ChevronLeft(t *testing.T) {
	img, err := Get(constants.IconChevronLeft, 24)
	require.NoError(t, err)
	assert.Equal(t, 24, img.Bounds().Dx())

	// the point of the chevron is stroked, the corners are empty
	tip := img.RGBAAt(7, 12)
	assert.NotZero(t, tip.A)
	assert.Equal(t, tip.A, tip.R, "white, premultiplied")
	assert.Zero(t, img.RGBAAt(0, 0).A)
	assert.Zero(t, img.RGBAAt(23, 23).A)
	assert.Zero(t, img.RGBAAt(20, 12).A, "open side of the chevron")
}

func TestGet_ScalesWithSize(t *testing.T) {
	img, err := Get(constants.IconChevronLeft, 48)
	require.NoError(t, err)

	assert.Equal(t, 48, img.Bounds().Dy())
	assert.NotZero(t, img.RGBAAt(14, 24).A)
}

func TestGet_Caches(t *testing.T) {
	a, err := Get(constants.IconChevronLeft, 30)
	require.NoError(t, err)
	b, err := Get(constants.IconChevronLeft, 30)
	require.NoError(t, err)

	assert.Same(t, a, b)
}

func TestGet_Errors(t *testing.T) {
	_, err := Get("nope", 24)
	assert.Error(t, err)

	_, err = Get(constants.IconChevronLeft, 0)
	assert.Error(t, err)

	_, err = Rasterize("<svg", 24)
	assert.Error(t, err)
}
