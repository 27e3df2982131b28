package devicekit_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devicekit"
	"github.com/dmitrymomot/devicekit/pkg/platform"
	"github.com/dmitrymomot/devicekit/pkg/version"
)

func TestKit_Report(t *testing.T) {
	t.Parallel()

	s, err := platform.Profile("iphone-5s")
	require.NoError(t, err)

	r, err := devicekit.New(platform.NewStatic(s)).Report()
	require.NoError(t, err)

	require.NotNil(t, r.System)
	require.NotNil(t, r.UI)
	require.NotNil(t, r.App)
	require.NotNil(t, r.DeploymentTarget)
	require.NotNil(t, r.BaseSDK)
	assert.True(t, r.UI.IsIdiomIPhone)
	assert.True(t, r.Screen.Is4InchSize)
	assert.Equal(t, "4-inch", r.Screen.SizeClass)
	assert.Equal(t, "iPhone 5S", r.Hardware.ModelName)

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "system")
	assert.Contains(t, decoded, "hardware")
	hw, ok := decoded["hardware"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "iphone-5s", hw["model"])
	assert.Equal(t, true, hw["is_iphone"])
}

func TestKit_ReportPartial(t *testing.T) {
	t.Parallel()

	s := iphone4s()
	s.OSVersion = ""
	s.BaseSDK = "8..1"

	r, err := devicekit.New(platform.NewStatic(s)).Report()
	require.Error(t, err)
	assert.ErrorIs(t, err, version.ErrEmptyVersion)
	assert.ErrorIs(t, err, version.ErrEmptySegment)

	assert.Nil(t, r.System)
	assert.Nil(t, r.UI)
	assert.Nil(t, r.BaseSDK)
	require.NotNil(t, r.App)
	require.NotNil(t, r.DeploymentTarget)
	require.NotNil(t, r.Screen)
	require.NotNil(t, r.Hardware)
}
