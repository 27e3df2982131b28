package devicekit_test

import (
	"bytes"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/devicekit"
	"github.com/dmitrymomot/devicekit/pkg/hardware"
	"github.com/dmitrymomot/devicekit/pkg/logger"
	"github.com/dmitrymomot/devicekit/pkg/platform"
	"github.com/dmitrymomot/devicekit/pkg/screen"
	"github.com/dmitrymomot/devicekit/pkg/version"
)

func iphone4s() platform.Snapshot {
	return platform.Snapshot{
		OSVersion:        "7.1.2",
		HardwareID:       "iPhone4,1",
		Idiom:            platform.IdiomPhone,
		Scale:            2,
		ScreenWidth:      320,
		ScreenHeight:     480,
		AppVersion:       "1.4.2",
		AppName:          "Demo",
		BundleID:         "com.example.demo",
		DeploymentTarget: "6.0",
		BaseSDK:          "8.1",
	}
}

// countingProvider counts how often the kit reads from the platform.
type countingProvider struct {
	*platform.Static
	osReads atomic.Int32
	hwReads atomic.Int32
}

func (p *countingProvider) OSVersion() string {
	p.osReads.Add(1)
	return p.Static.OSVersion()
}

func (p *countingProvider) HardwareID() string {
	p.hwReads.Add(1)
	return p.Static.HardwareID()
}

func TestNew_NilProviderPanics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, devicekit.ErrNilProvider, func() { devicekit.New(nil) })
}

func TestKit_Groups(t *testing.T) {
	t.Parallel()

	kit := devicekit.New(platform.NewStatic(iphone4s()))

	sys, err := kit.System()
	require.NoError(t, err)
	assert.True(t, sys.Version.Equal(version.New(7, 1, 2)))

	ui, err := kit.UI()
	require.NoError(t, err)
	assert.Equal(t, devicekit.UI{IsIdiomIPhone: true, IsFlatMode: true}, *ui)

	s := kit.Screen()
	assert.True(t, s.IsRetina())
	assert.False(t, s.IsRetinaHD())
	assert.True(t, s.Is3_5InchSize())
	assert.Equal(t, screen.Size{Width: 640, Height: 960}, s.Resolution())

	app, err := kit.App()
	require.NoError(t, err)
	assert.Equal(t, "1.4.2", app.Version.String())
	assert.Equal(t, "Demo", app.Name)
	assert.Equal(t, "com.example.demo", app.BundleID)

	hw := kit.Hardware()
	assert.Equal(t, hardware.IPhone4s, hw.Model)
	assert.Equal(t, "iPhone4,1", hw.ModelID)
	assert.Equal(t, "iPhone 4S", hw.ModelName())
	assert.True(t, hw.IsIPhone)

	dt, err := kit.DeploymentTarget()
	require.NoError(t, err)
	assert.Equal(t, uint(60000), dt.Version.Packed())

	sdk, err := kit.BaseSDK()
	require.NoError(t, err)
	assert.Equal(t, uint(80100), sdk.Version.Packed())
}

func TestKit_FlatMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		os   string
		flat bool
	}{
		{os: "6.1.6", flat: false},
		{os: "7", flat: true},
		{os: "8.1.2", flat: true},
	}

	for _, tt := range tests {
		t.Run(tt.os, func(t *testing.T) {
			t.Parallel()

			s := iphone4s()
			s.OSVersion = tt.os
			ui, err := devicekit.New(platform.NewStatic(s)).UI()
			require.NoError(t, err)
			assert.Equal(t, tt.flat, ui.IsFlatMode)
		})
	}
}

func TestKit_IdiomPad(t *testing.T) {
	t.Parallel()

	s, err := platform.Profile("ipad-mini-2")
	require.NoError(t, err)

	kit := devicekit.New(platform.NewStatic(s))
	ui, err := kit.UI()
	require.NoError(t, err)
	assert.True(t, ui.IsIdiomIPad)
	assert.False(t, ui.IsIdiomIPhone)

	hw := kit.Hardware()
	assert.True(t, hw.IsIPad)
	assert.True(t, hw.IsIPadMini)
}

func TestKit_Memoized(t *testing.T) {
	t.Parallel()

	p := &countingProvider{Static: platform.NewStatic(iphone4s())}
	kit := devicekit.New(p)

	sys1, err := kit.System()
	require.NoError(t, err)
	sys2, err := kit.System()
	require.NoError(t, err)
	assert.Same(t, sys1, sys2)

	ui1, _ := kit.UI()
	ui2, _ := kit.UI()
	assert.Same(t, ui1, ui2)

	app1, _ := kit.App()
	app2, _ := kit.App()
	assert.Same(t, app1, app2)

	dt1, _ := kit.DeploymentTarget()
	dt2, _ := kit.DeploymentTarget()
	assert.Same(t, dt1, dt2)

	sdk1, _ := kit.BaseSDK()
	sdk2, _ := kit.BaseSDK()
	assert.Same(t, sdk1, sdk2)
	assert.NotSame(t, dt1, sdk1)

	assert.Same(t, kit.Screen(), kit.Screen())
	assert.Same(t, kit.Hardware(), kit.Hardware())

	assert.Equal(t, int32(1), p.osReads.Load())
	assert.Equal(t, int32(1), p.hwReads.Load())
}

func TestKit_ConcurrentFirstAccess(t *testing.T) {
	t.Parallel()

	p := &countingProvider{Static: platform.NewStatic(iphone4s())}
	kit := devicekit.New(p)

	const workers = 32
	systems := make([]*devicekit.System, workers)
	hardwares := make([]*hardware.Hardware, workers)

	var g errgroup.Group
	for i := range workers {
		g.Go(func() error {
			sys, err := kit.System()
			if err != nil {
				return err
			}
			systems[i] = sys
			hardwares[i] = kit.Hardware()
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i := 1; i < workers; i++ {
		assert.Same(t, systems[0], systems[i])
		assert.Same(t, hardwares[0], hardwares[i])
	}
	assert.Equal(t, int32(1), p.osReads.Load())
	assert.Equal(t, int32(1), p.hwReads.Load())
}

func TestKit_VersionErrors(t *testing.T) {
	t.Parallel()

	s := iphone4s()
	s.OSVersion = "8.x"
	s.AppVersion = ""
	s.DeploymentTarget = "-7"
	s.BaseSDK = "8.1.2.3"
	kit := devicekit.New(platform.NewStatic(s))

	_, sysErr := kit.System()
	require.Error(t, sysErr)
	err := sysErr
	var perr *version.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "8.x", perr.Input)
	assert.ErrorIs(t, err, version.ErrNonNumericSegment)

	_, uiErr := kit.UI()
	assert.ErrorIs(t, uiErr, version.ErrNonNumericSegment)

	_, err = kit.App()
	assert.ErrorIs(t, err, version.ErrEmptyVersion)

	_, err = kit.DeploymentTarget()
	assert.ErrorIs(t, err, version.ErrNegativeSegment)

	_, err = kit.BaseSDK()
	assert.ErrorIs(t, err, version.ErrTooManySegments)

	// errors are cached along with the value
	_, again := kit.System()
	assert.Same(t, sysErr, again)

	// facts that parse nothing still resolve
	assert.Equal(t, hardware.IPhone4s, kit.Hardware().Model)
	assert.True(t, kit.Screen().IsRetina())
}

func TestKit_Simulator(t *testing.T) {
	t.Parallel()

	s := iphone4s()
	s.Simulator = true
	hw := devicekit.New(platform.NewStatic(s)).Hardware()

	assert.Equal(t, hardware.Simulator, hw.Model)
	assert.True(t, hw.IsSimulator)
	assert.False(t, hw.IsIPhone)
	assert.Equal(t, "iPhone4,1", hw.ModelID)
}

func TestKit_WithClassifier(t *testing.T) {
	t.Parallel()

	s, err := platform.Profile("iphone-6-plus")
	require.NoError(t, err)

	assert.Equal(t, hardware.Unknown, devicekit.New(platform.NewStatic(s)).Hardware().Model)

	c := hardware.NewClassifier(hardware.WithIdentifiers(map[string]hardware.Model{
		"iPhone7,1": hardware.IPhone6Plus,
	}))
	kit := devicekit.New(platform.NewStatic(s), devicekit.WithClassifier(c), devicekit.WithClassifier(nil))
	assert.Equal(t, hardware.IPhone6Plus, kit.Hardware().Model)
	assert.True(t, kit.Screen().IsRetinaHD())
	assert.True(t, kit.Screen().Is5_5InchSize())
}

func TestKit_WithLogger(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithDevelopment(""))

	s := iphone4s()
	s.AppVersion = "beta"
	kit := devicekit.New(platform.NewStatic(s), devicekit.WithLogger(log), devicekit.WithLogger(nil))

	_ = kit.Hardware()
	_, _ = kit.App()

	out := buf.String()
	assert.Contains(t, out, "component=devicekit")
	assert.Contains(t, out, "facts=hardware")
	assert.Contains(t, out, "model=iphone-4s")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "facts=app")
}
