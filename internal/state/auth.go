package state

import "github.com/edworks/course_catalog/internal/models"

type AuthState struct {
	User  *models.User
	Token string
}

// AuthAction is a sealed set of auth transitions.
type AuthAction interface {
	isAuthAction()
}

// LoginAction covers login, register and refresh success alike.
type LoginAction struct {
	User  models.User
	Token string
}

type LogoutAction struct{}

func (LoginAction) isAuthAction()  {}
func (LogoutAction) isAuthAction() {}

// ReduceAuth is pure; unknown actions return the input state unchanged.
func ReduceAuth(state AuthState, action AuthAction) AuthState {
	switch a := action.(type) {
	case LoginAction:
		user := a.User
		user.Role = models.NormalizeRole(string(user.Role))
		return AuthState{User: &user, Token: a.Token}
	case LogoutAction:
		return AuthState{User: nil, Token: ""}
	default:
		return state
	}
}
