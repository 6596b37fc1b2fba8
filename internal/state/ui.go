package state

// UIState is pure view-state with no backend correspondence.
type UIState struct {
	IsCreateModalOpen bool
	IsEdit            bool
}

type UIAction interface {
	isUIAction()
}

type OpenCreateModalAction struct{}

type OpenEditModalAction struct{}

// CloseModalAction closes whichever modal is open and drops the edit flag.
type CloseModalAction struct{}

func (OpenCreateModalAction) isUIAction() {}
func (OpenEditModalAction) isUIAction()   {}
func (CloseModalAction) isUIAction()      {}

func ReduceUI(state UIState, action UIAction) UIState {
	switch action.(type) {
	case OpenCreateModalAction:
		return UIState{IsCreateModalOpen: true, IsEdit: false}
	case OpenEditModalAction:
		return UIState{IsCreateModalOpen: true, IsEdit: true}
	case CloseModalAction:
		return UIState{IsCreateModalOpen: false, IsEdit: false}
	default:
		return state
	}
}
