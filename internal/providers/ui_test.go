package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUIProvider_ModalTransitions(t *testing.T) {
	t.Parallel()

	ui := NewUIProvider()
	assert.False(t, ui.State().IsCreateModalOpen)

	ui.OpenCreateModal()
	assert.True(t, ui.State().IsCreateModalOpen)
	assert.False(t, ui.State().IsEdit)

	ui.OpenEditModal()
	assert.True(t, ui.State().IsCreateModalOpen)
	assert.True(t, ui.State().IsEdit)

	ui.CloseEditModal()
	assert.False(t, ui.State().IsCreateModalOpen)
	assert.False(t, ui.State().IsEdit)

	ui.OpenCreateModal()
	ui.CloseCreateModal()
	assert.False(t, ui.State().IsCreateModalOpen)
}

func TestUIProvider_SubscribeNotified(t *testing.T) {
	t.Parallel()

	ui := NewUIProvider()
	calls := 0
	ui.Subscribe(func() { calls++ })

	ui.OpenCreateModal()
	ui.CloseCreateModal()

	assert.Equal(t, 2, calls)
}
