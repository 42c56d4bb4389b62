package preferences_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stevenson0/Insta-clone/gateway/gatewaytest"
	"github.com/stevenson0/Insta-clone/routes/preferences"
	"github.com/stevenson0/Insta-clone/routes/routetest"
	"github.com/stevenson0/Insta-clone/types"
)

func TestThemeDefaultsToDarkAndToggles(t *testing.T) {
	h := routetest.New(t, gatewaytest.New(), preferences.Router{})

	rec := routetest.Do(t, h, http.MethodGet, "/preferences/tab-1/theme", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, types.Theme{ClientID: "tab-1", Dark: true}, routetest.Decode[types.Theme](t, rec))

	rec = routetest.Do(t, h, http.MethodPost, "/preferences/tab-1/theme/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, routetest.Decode[types.Theme](t, rec).Dark)

	rec = routetest.Do(t, h, http.MethodGet, "/preferences/tab-1/theme", nil)
	assert.False(t, routetest.Decode[types.Theme](t, rec).Dark)

	rec = routetest.Do(t, h, http.MethodGet, "/preferences/tab-2/theme", nil)
	assert.True(t, routetest.Decode[types.Theme](t, rec).Dark)
}
