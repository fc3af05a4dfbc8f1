package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	cause := errors.New("db down")
	err := fmt.Errorf("wrapped: %w", Fail(KeyPlaceDatabaseError, cause))

	assert.Equal(t, KeyPlaceDatabaseError, Code(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "", Code(cause))

	setup := &SetupError{Keys: []string{KeySetupAdminRole, KeySetupRollbackFailed}}
	assert.Equal(t, KeySetupAdminRole, Code(setup))
	assert.Equal(t, []string{KeySetupAdminRole, KeySetupRollbackFailed}, Keys(setup))
	assert.Equal(t, []string{KeyPlaceDatabaseError}, Keys(err))
	assert.Nil(t, Keys(cause))
}

func TestArgs(t *testing.T) {
	err := Fail(KeyRoadLimitReached, nil).WithArgs(map[string]any{"limit": 4})
	assert.Equal(t, map[string]any{"limit": 4}, Args(err))
	assert.Nil(t, Args(errors.New("x")))
	assert.Equal(t, KeyRoadLimitReached, err.Error())
}
