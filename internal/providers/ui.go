package providers

import (
	"sync"

	"github.com/edworks/course_catalog/internal/state"
)

// UIProvider owns modal view-state. Purely local, no network interaction.
type UIProvider struct {
	mu        sync.Mutex
	state     state.UIState
	listeners []func()
}

func NewUIProvider() *UIProvider {
	return &UIProvider{}
}

func (p *UIProvider) State() state.UIState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *UIProvider) Subscribe(fn func()) {
	p.mu.Lock()
	p.listeners = append(p.listeners, fn)
	p.mu.Unlock()
}

func (p *UIProvider) dispatch(action state.UIAction) {
	p.mu.Lock()
	p.state = state.ReduceUI(p.state, action)
	listeners := make([]func(), len(p.listeners))
	copy(listeners, p.listeners)
	p.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

func (p *UIProvider) OpenCreateModal() {
	p.dispatch(state.OpenCreateModalAction{})
}

func (p *UIProvider) OpenEditModal() {
	p.dispatch(state.OpenEditModalAction{})
}

func (p *UIProvider) CloseCreateModal() {
	p.dispatch(state.CloseModalAction{})
}

func (p *UIProvider) CloseEditModal() {
	p.dispatch(state.CloseModalAction{})
}
