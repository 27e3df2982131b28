package platform_test

import (
	"encoding/json"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devicekit/pkg/config"
	"github.com/dmitrymomot/devicekit/pkg/platform"
)

func TestStatic(t *testing.T) {
	t.Parallel()

	s := platform.Snapshot{
		OSVersion:        "8.1.2",
		HardwareID:       "iPhone7,1",
		Idiom:            platform.IdiomPhone,
		Scale:            3,
		ScreenWidth:      414,
		ScreenHeight:     736,
		AppVersion:       "1.0",
		AppName:          "Demo",
		BundleID:         "com.example.demo",
		DeploymentTarget: "7.0",
		BaseSDK:          "8.1",
	}
	p := platform.NewStatic(s)

	assert.Equal(t, "8.1.2", p.OSVersion())
	assert.Equal(t, "iPhone7,1", p.HardwareID())
	assert.False(t, p.IsSimulator())
	assert.Equal(t, platform.IdiomPhone, p.Idiom())
	assert.Equal(t, platform.ScreenMetrics{Scale: 3, Width: 414, Height: 736}, p.Screen())
	assert.Equal(t, platform.AppInfo{ShortVersion: "1.0", Name: "Demo", BundleID: "com.example.demo"}, p.App())
	assert.Equal(t, "7.0", p.DeploymentTarget())
	assert.Equal(t, "8.1", p.BaseSDK())
	assert.Equal(t, s, p.Snapshot())
}

func TestSnapshot_Merge(t *testing.T) {
	t.Parallel()

	base := platform.Snapshot{
		OSVersion:  "8.0",
		HardwareID: "iPhone6,1",
		Simulator:  true,
		Idiom:      platform.IdiomPhone,
		Scale:      2,
		AppName:    "Demo",
	}
	merged := base.Merge(platform.Snapshot{
		OSVersion:    "8.1",
		ScreenHeight: 568,
		Idiom:        platform.IdiomUnspecified,
	})

	assert.Equal(t, "8.1", merged.OSVersion)
	assert.Equal(t, "iPhone6,1", merged.HardwareID)
	assert.True(t, merged.Simulator)
	assert.Equal(t, platform.IdiomPhone, merged.Idiom)
	assert.Equal(t, 2.0, merged.Scale)
	assert.Equal(t, 568.0, merged.ScreenHeight)
	assert.Equal(t, "Demo", merged.AppName)

	assert.True(t, platform.Snapshot{}.Merge(platform.Snapshot{Simulator: true}).Simulator)
	assert.Equal(t, platform.IdiomPad, base.Merge(platform.Snapshot{Idiom: platform.IdiomPad}).Idiom)
}

func TestIdiom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want platform.Idiom
	}{
		{text: "phone", want: platform.IdiomPhone},
		{text: "pad", want: platform.IdiomPad},
		{text: "unspecified", want: platform.IdiomUnspecified},
		{text: "", want: platform.IdiomUnspecified},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			var i platform.Idiom
			require.NoError(t, i.UnmarshalText([]byte(tt.text)))
			assert.Equal(t, tt.want, i)
		})
	}

	var i platform.Idiom
	assert.ErrorIs(t, i.UnmarshalText([]byte("watch")), platform.ErrUnknownIdiom)

	text, err := platform.IdiomPad.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "pad", string(text))
}

func TestDecode(t *testing.T) {
	t.Parallel()

	s, err := platform.Decode(strings.NewReader(`
os_version: "7.1"
hardware_id: "iPad2,5"
idiom: pad
scale: 1
screen_width: 768
screen_height: 1024
`))
	require.NoError(t, err)
	assert.Equal(t, "7.1", s.OSVersion)
	assert.Equal(t, "iPad2,5", s.HardwareID)
	assert.Equal(t, platform.IdiomPad, s.Idiom)
	assert.Equal(t, 1.0, s.Scale)
	assert.Equal(t, 1024.0, s.ScreenHeight)
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	_, err := platform.Decode(strings.NewReader("idiom: watch\n"))
	assert.ErrorIs(t, err, platform.ErrDecodeSnapshot)

	_, err = platform.Decode(strings.NewReader("scale: [1, 2]\n"))
	assert.ErrorIs(t, err, platform.ErrDecodeSnapshot)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	s, err := platform.LoadFile("testdata/custom.yaml")
	require.NoError(t, err)
	assert.Equal(t, "iPad4,7", s.HardwareID)
	assert.Equal(t, "Field Notes", s.AppName)
	assert.Equal(t, "7.1", s.DeploymentTarget)

	_, err = platform.LoadFile("testdata/unknown_key.yaml")
	assert.ErrorIs(t, err, platform.ErrDecodeSnapshot)

	_, err = platform.LoadFile("testdata/missing.yaml")
	assert.ErrorIs(t, err, platform.ErrDecodeSnapshot)
}

func TestProfiles(t *testing.T) {
	t.Parallel()

	names, err := platform.Profiles()
	require.NoError(t, err)
	assert.Contains(t, names, "iphone-4s")
	assert.Contains(t, names, "ipad-mini-2")
	assert.Contains(t, names, "simulator")
	assert.IsIncreasing(t, names)

	for _, name := range names {
		s, err := platform.Profile(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, s.OSVersion, name)
		assert.NotEmpty(t, s.HardwareID, name)
		assert.NotZero(t, s.Scale, name)
		assert.NotEqual(t, platform.IdiomUnspecified, s.Idiom, name)
	}

	plus, err := platform.Profile("iphone-6-plus")
	require.NoError(t, err)
	assert.Equal(t, 3.0, plus.Scale)
	assert.Equal(t, 736.0, plus.ScreenHeight)

	_, err = platform.Profile("iphone-12")
	assert.ErrorIs(t, err, platform.ErrProfileNotFound)
}

func TestSnapshot_JSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(platform.Snapshot{OSVersion: "8.1", Idiom: platform.IdiomPad})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"idiom":"pad"`)
	assert.Contains(t, string(data), `"os_version":"8.1"`)
}

func TestFromEnv(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	t.Setenv("DEVICEKIT_OS_VERSION", "8.1.2")
	t.Setenv("DEVICEKIT_HARDWARE_ID", "iPad4,4")
	t.Setenv("DEVICEKIT_SIMULATOR", "false")
	t.Setenv("DEVICEKIT_IDIOM", "pad")
	t.Setenv("DEVICEKIT_SCALE", "2")
	t.Setenv("DEVICEKIT_SCREEN_WIDTH", "768")
	t.Setenv("DEVICEKIT_SCREEN_HEIGHT", "1024")
	t.Setenv("DEVICEKIT_APP_VERSION", "3.1")
	t.Setenv("DEVICEKIT_BUNDLE_ID", "com.example.env")

	p, err := platform.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "8.1.2", p.OSVersion())
	assert.Equal(t, "iPad4,4", p.HardwareID())
	assert.Equal(t, platform.IdiomPad, p.Idiom())
	assert.Equal(t, platform.ScreenMetrics{Scale: 2, Width: 768, Height: 1024}, p.Screen())
	assert.Equal(t, "3.1", p.App().ShortVersion)
	assert.Equal(t, "com.example.env", p.App().BundleID)
}

func TestFromEnv_InvalidIdiom(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	t.Setenv("DEVICEKIT_IDIOM", "watch")

	_, err := platform.FromEnv()
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestHost(t *testing.T) {
	t.Parallel()

	p, err := platform.Host(platform.Snapshot{AppName: "Demo", Scale: 2})
	if runtime.GOOS != "darwin" && runtime.GOOS != "ios" {
		assert.ErrorIs(t, err, platform.ErrUnsupportedPlatform)
		assert.Nil(t, p)
		return
	}

	require.NoError(t, err)
	assert.NotEmpty(t, p.OSVersion())
	assert.NotEmpty(t, p.HardwareID())
	assert.Equal(t, "Demo", p.App().Name)
	assert.Equal(t, 2.0, p.Screen().Scale)
}
