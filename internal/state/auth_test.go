package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edworks/course_catalog/internal/models"
)

type unknownAuthAction struct{}

func (unknownAuthAction) isAuthAction() {}

func TestReduceAuth_UnknownActionReturnsInput(t *testing.T) {
	t.Parallel()

	initial := AuthState{User: &models.User{ID: "u1"}, Token: "t"}
	next := ReduceAuth(initial, unknownAuthAction{})
	assert.Equal(t, initial, next)
}

func TestReduceAuth_Login(t *testing.T) {
	t.Parallel()

	next := ReduceAuth(AuthState{}, LoginAction{
		User:  models.User{ID: "u1", Username: "Juan", Email: "j@e.com", Role: models.RoleAdmin},
		Token: "t",
	})

	require.NotNil(t, next.User)
	assert.Equal(t, models.RoleAdmin, next.User.Role)
	assert.Equal(t, "t", next.Token)
}

func TestReduceAuth_LoginNormalizesUnknownRole(t *testing.T) {
	t.Parallel()

	next := ReduceAuth(AuthState{}, LoginAction{
		User:  models.User{ID: "u1", Role: models.Role("superuser")},
		Token: "t",
	})

	require.NotNil(t, next.User)
	assert.Equal(t, models.RoleUser, next.User.Role)
}

func TestReduceAuth_Logout(t *testing.T) {
	t.Parallel()

	logged := AuthState{User: &models.User{ID: "u1", Role: models.RoleUser}, Token: "t"}
	next := ReduceAuth(logged, LogoutAction{})

	assert.Nil(t, next.User)
	assert.Empty(t, next.Token)
}
