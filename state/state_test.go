package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreenKindValidation(t *testing.T) {
	SetupValidator()

	for _, kind := range []string{"home", "search", "watch", "chat"} {
		assert.NoError(t, Validator.Var(kind, "screenkind"), kind)
	}

	assert.Error(t, Validator.Var("settings", "screenkind"))
	assert.Error(t, Validator.Var("", "required,screenkind"))
}
