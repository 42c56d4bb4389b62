package meta_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stevenson0/Insta-clone/gateway/gatewaytest"
	"github.com/stevenson0/Insta-clone/routes/meta"
	"github.com/stevenson0/Insta-clone/routes/routetest"
	"github.com/stevenson0/Insta-clone/state"
	"github.com/stevenson0/Insta-clone/types"
)

func TestStatus(t *testing.T) {
	h := routetest.New(t, gatewaytest.New(), meta.Router{})

	_, _, err := state.Screens.Mount("explore", "")
	require.NoError(t, err)

	rec := routetest.Do(t, h, http.MethodGet, "/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, types.Status{
		FastModel:      "fast-model",
		ReasoningModel: "reasoning-model",
		StorageBackend: "memory",
		MountedScreens: 1,
	}, routetest.Decode[types.Status](t, rec))
}
