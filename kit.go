package devicekit

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/devicekit/pkg/hardware"
	"github.com/dmitrymomot/devicekit/pkg/logger"
	"github.com/dmitrymomot/devicekit/pkg/platform"
	"github.com/dmitrymomot/devicekit/pkg/screen"
	"github.com/dmitrymomot/devicekit/pkg/version"
)

// lazy holds a value built at most once, together with the build error.
type lazy[T any] struct {
	once sync.Once
	val  *T
	err  error
}

func (l *lazy[T]) get(build func() (*T, error)) (*T, error) {
	l.once.Do(func() { l.val, l.err = build() })
	return l.val, l.err
}

// Kit exposes the environment facts of the running device.
//
// A Kit is created once per process with New and handed to the code that
// needs it. Each group of facts is built on first access and cached for the
// lifetime of the Kit; concurrent first calls observe a single instance.
// Facts are never refreshed: the device and OS cannot change while the
// process runs.
type Kit struct {
	provider   platform.Provider
	classifier *hardware.Classifier
	log        *slog.Logger

	system           lazy[System]
	ui               lazy[UI]
	screen           lazy[screen.Screen]
	app              lazy[App]
	hardware         lazy[hardware.Hardware]
	deploymentTarget lazy[Target]
	baseSDK          lazy[Target]
}

// New returns a Kit reading facts from p. It panics if p is nil.
func New(p platform.Provider, opts ...Option) *Kit {
	if p == nil {
		panic(ErrNilProvider)
	}
	k := &Kit{
		provider:   p,
		classifier: hardware.NewClassifier(),
		log:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// System returns the operating system facts. The error is a
// *version.ParseError when the OS version string is malformed.
func (k *Kit) System() (*System, error) {
	return k.system.get(func() (*System, error) {
		v, err := k.parseVersion("system", k.provider.OSVersion())
		if err != nil {
			return nil, err
		}
		k.log.Debug("environment facts resolved", logger.Facts("system"), logger.OSVersion(v))
		return &System{Version: v}, nil
	})
}

// UI returns the interface facts. It fails when the OS version cannot be
// parsed, since flat mode depends on it.
func (k *Kit) UI() (*UI, error) {
	return k.ui.get(func() (*UI, error) {
		sys, err := k.System()
		if err != nil {
			return nil, err
		}
		idiom := k.provider.Idiom()
		ui := &UI{
			IsIdiomIPad:   idiom == platform.IdiomPad,
			IsIdiomIPhone: idiom == platform.IdiomPhone,
			IsFlatMode:    sys.Version.Major >= flatModeMajor,
		}
		k.log.Debug("environment facts resolved", logger.Facts("ui"), slog.String("idiom", idiom.String()))
		return ui, nil
	})
}

// Screen returns the main screen facts.
func (k *Kit) Screen() *screen.Screen {
	s, _ := k.screen.get(func() (*screen.Screen, error) {
		m := k.provider.Screen()
		s := screen.New(m.Scale, m.Width, m.Height)
		k.log.Debug("environment facts resolved", logger.Facts("screen"),
			slog.Float64("scale", s.Scale), slog.String("size_class", s.Class().String()))
		return &s, nil
	})
	return s
}

// App returns the application facts. The error is a *version.ParseError
// when the bundle short version is malformed.
func (k *Kit) App() (*App, error) {
	return k.app.get(func() (*App, error) {
		info := k.provider.App()
		v, err := k.parseVersion("app", info.ShortVersion)
		if err != nil {
			return nil, err
		}
		k.log.Debug("environment facts resolved", logger.Facts("app"), slog.String("bundle_id", info.BundleID))
		return &App{Version: v, Name: info.Name, BundleID: info.BundleID}, nil
	})
}

// Hardware returns the device model facts. Unrecognized identifiers yield
// hardware.Unknown rather than an error.
func (k *Kit) Hardware() *hardware.Hardware {
	hw, _ := k.hardware.get(func() (*hardware.Hardware, error) {
		hw := k.classifier.New(k.provider.HardwareID(), k.provider.IsSimulator())
		k.log.Debug("environment facts resolved", logger.Facts("hardware"),
			logger.ModelID(hw.ModelID), logger.Model(hw.Model))
		return &hw, nil
	})
	return hw
}

// DeploymentTarget returns the minimum OS version the app was built for.
func (k *Kit) DeploymentTarget() (*Target, error) {
	return k.deploymentTarget.get(func() (*Target, error) {
		v, err := k.parseVersion("deployment_target", k.provider.DeploymentTarget())
		if err != nil {
			return nil, err
		}
		return &Target{Version: v}, nil
	})
}

// BaseSDK returns the OS SDK version the app was compiled against.
func (k *Kit) BaseSDK() (*Target, error) {
	return k.baseSDK.get(func() (*Target, error) {
		v, err := k.parseVersion("base_sdk", k.provider.BaseSDK())
		if err != nil {
			return nil, err
		}
		return &Target{Version: v}, nil
	})
}

func (k *Kit) parseVersion(facts, raw string) (version.Version, error) {
	v, err := version.Parse(raw)
	if err != nil {
		k.log.Warn("environment facts unavailable", logger.Facts(facts), logger.Error(err))
		return version.Version{}, fmt.Errorf("%s version: %w", facts, err)
	}
	return v, nil
}
