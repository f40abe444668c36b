package mapview

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrMountInProgress = errors.New("map initialization already in progress")
	ErrSurfaceTornDown = errors.New("surface unmounted during map initialization")
)

// Surface - поверхность отображения, к которой привязано не больше одной карты.
// Mount и Unmount можно вызывать из разных горутин
type Surface struct {
	mu           sync.Mutex
	renderer     *Renderer
	initializing bool
	cancelInit   context.CancelFunc
	generation   uint64
}

func NewSurface() *Surface {
	return &Surface{}
}

// Mount создает карту на поверхности. Если карта уже создана, возвращается она же
func (s *Surface) Mount(ctx context.Context, opts Options) (*Renderer, error) {
	s.mu.Lock()
	if s.renderer != nil {
		r := s.renderer
		s.mu.Unlock()
		return r, nil
	}
	if s.initializing {
		s.mu.Unlock()
		return nil, ErrMountInProgress
	}
	initCtx, cancel := context.WithCancel(ctx)
	s.initializing = true
	s.cancelInit = cancel
	generation := s.generation
	s.mu.Unlock()

	r, err := New(initCtx, opts)

	s.mu.Lock()
	defer s.mu.Unlock()
	cancel()
	s.initializing = false
	s.cancelInit = nil

	if s.generation != generation {
		// Unmount отработал, пока карта собиралась
		if r != nil {
			r.Release()
		}
		return nil, ErrSurfaceTornDown
	}
	if err != nil {
		return nil, err
	}
	s.renderer = r
	return r, nil
}

// Renderer возвращает смонтированную карту или nil
func (s *Surface) Renderer() *Renderer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renderer
}

// Unmount отменяет незавершенную инициализацию и освобождает карту
func (s *Surface) Unmount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	if s.cancelInit != nil {
		s.cancelInit()
	}
	if s.renderer != nil {
		s.renderer.Release()
		s.renderer = nil
	}
}
