package platform

// Snapshot is a fixed set of raw device facts.
type Snapshot struct {
	OSVersion        string  `yaml:"os_version" env:"OS_VERSION" json:"os_version"`
	HardwareID       string  `yaml:"hardware_id" env:"HARDWARE_ID" json:"hardware_id"`
	Simulator        bool    `yaml:"simulator" env:"SIMULATOR" json:"simulator"`
	Idiom            Idiom   `yaml:"idiom" env:"IDIOM" json:"idiom"`
	Scale            float64 `yaml:"scale" env:"SCALE" json:"scale"`
	ScreenWidth      float64 `yaml:"screen_width" env:"SCREEN_WIDTH" json:"screen_width"`
	ScreenHeight     float64 `yaml:"screen_height" env:"SCREEN_HEIGHT" json:"screen_height"`
	AppVersion       string  `yaml:"app_version" env:"APP_VERSION" json:"app_version"`
	AppName          string  `yaml:"app_name" env:"APP_NAME" json:"app_name"`
	BundleID         string  `yaml:"bundle_id" env:"BUNDLE_ID" json:"bundle_id"`
	DeploymentTarget string  `yaml:"deployment_target" env:"DEPLOYMENT_TARGET" json:"deployment_target"`
	BaseSDK          string  `yaml:"base_sdk" env:"BASE_SDK" json:"base_sdk"`
}

// Merge returns s with every non-zero field of override applied on top.
// A false Simulator in override never clears a true one in s.
func (s Snapshot) Merge(override Snapshot) Snapshot {
	out := s
	setString(&out.OSVersion, override.OSVersion)
	setString(&out.HardwareID, override.HardwareID)
	setString(&out.AppVersion, override.AppVersion)
	setString(&out.AppName, override.AppName)
	setString(&out.BundleID, override.BundleID)
	setString(&out.DeploymentTarget, override.DeploymentTarget)
	setString(&out.BaseSDK, override.BaseSDK)
	setFloat(&out.Scale, override.Scale)
	setFloat(&out.ScreenWidth, override.ScreenWidth)
	setFloat(&out.ScreenHeight, override.ScreenHeight)
	if override.Idiom != IdiomUnspecified {
		out.Idiom = override.Idiom
	}
	out.Simulator = out.Simulator || override.Simulator
	return out
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}

// Static is a Provider over a fixed Snapshot.
type Static struct {
	snapshot Snapshot
}

var _ Provider = (*Static)(nil)

// NewStatic returns a provider reporting s.
func NewStatic(s Snapshot) *Static {
	return &Static{snapshot: s}
}

// Snapshot returns a copy of the facts p reports.
func (p *Static) Snapshot() Snapshot { return p.snapshot }

func (p *Static) OSVersion() string  { return p.snapshot.OSVersion }
func (p *Static) HardwareID() string { return p.snapshot.HardwareID }
func (p *Static) IsSimulator() bool  { return p.snapshot.Simulator }
func (p *Static) Idiom() Idiom       { return p.snapshot.Idiom }

func (p *Static) Screen() ScreenMetrics {
	return ScreenMetrics{
		Scale:  p.snapshot.Scale,
		Width:  p.snapshot.ScreenWidth,
		Height: p.snapshot.ScreenHeight,
	}
}

func (p *Static) App() AppInfo {
	return AppInfo{
		ShortVersion: p.snapshot.AppVersion,
		Name:         p.snapshot.AppName,
		BundleID:     p.snapshot.BundleID,
	}
}

func (p *Static) DeploymentTarget() string { return p.snapshot.DeploymentTarget }
func (p *Static) BaseSDK() string          { return p.snapshot.BaseSDK }
