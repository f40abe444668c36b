package mapview

import (
	"context"
	"testing"

	"github.com/shenikar/geo_risk_system/internal/overlay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurface_MountOnce(t *testing.T) {
	ds := overlay.Default()
	s := NewSurface()

	first, err := s.Mount(context.Background(), Options{Initial: cisarua, Dataset: &ds})
	require.NoError(t, err)

	second, err := s.Mount(context.Background(), Options{Initial: cisarua, Dataset: &ds})
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Same(t, first, s.Renderer())
}

func TestSurface_UnmountReleases(t *testing.T) {
	ds := overlay.Default()
	s := NewSurface()
	r, err := s.Mount(context.Background(), Options{Initial: cisarua, Dataset: &ds})
	require.NoError(t, err)

	s.Unmount()
	s.Unmount()

	assert.True(t, r.Released())
	assert.Nil(t, s.Renderer())

	remounted, err := s.Mount(context.Background(), Options{Initial: cisarua, Dataset: &ds})
	require.NoError(t, err)
	assert.NotSame(t, r, remounted)
	assert.False(t, remounted.Released())
}

func TestSurface_UnmountDuringInitialization(t *testing.T) {
	ds := overlay.Default()
	s := NewSurface()
	var inFlight error

	r, err := s.Mount(context.Background(), Options{
		Initial: cisarua,
		Dataset: &ds,
		buildHook: func(id LayerID) {
			if id == LayerSoil {
				// повторный Mount во время сборки не создает вторую карту
				_, inFlight = s.Mount(context.Background(), Options{Dataset: &ds})
				s.Unmount()
			}
		},
	})

	assert.ErrorIs(t, inFlight, ErrMountInProgress)
	assert.ErrorIs(t, err, ErrSurfaceTornDown)
	assert.Nil(t, r)
	assert.Nil(t, s.Renderer())
}

func TestSurface_CancelledContext(t *testing.T) {
	ds := overlay.Default()
	s := NewSurface()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Mount(ctx, Options{Dataset: &ds})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, s.Renderer())
}
