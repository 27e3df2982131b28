package devicekit

import (
	"errors"

	"github.com/dmitrymomot/devicekit/pkg/hardware"
	"github.com/dmitrymomot/devicekit/pkg/screen"
)

// Report gathers every group of facts. Groups that failed to resolve are nil.
type Report struct {
	System           *System         `json:"system,omitempty"`
	UI               *UI             `json:"ui,omitempty"`
	Screen           *ScreenReport   `json:"screen"`
	App              *App            `json:"app,omitempty"`
	Hardware         *HardwareReport `json:"hardware"`
	DeploymentTarget *Target         `json:"deployment_target,omitempty"`
	BaseSDK          *Target         `json:"base_sdk,omitempty"`
}

// ScreenReport adds the derived screen facts to the raw metrics.
type ScreenReport struct {
	screen.Screen
	Resolution    screen.Size `json:"resolution"`
	IsRetina      bool        `json:"is_retina"`
	IsRetinaHD    bool        `json:"is_retina_hd"`
	Is4InchSize   bool        `json:"is_4_inch_size"`
	Is4_7InchSize bool        `json:"is_4_7_inch_size"`
	Is5_5InchSize bool        `json:"is_5_5_inch_size"`
	SizeClass     string      `json:"size_class"`
}

// HardwareReport adds the display name to the hardware facts.
type HardwareReport struct {
	hardware.Hardware
	ModelName string `json:"model_name"`
}

// Report resolves every group. The returned error joins the failures of all
// groups; the Report is filled with whatever resolved.
func (k *Kit) Report() (Report, error) {
	var r Report
	var errs []error

	var err error
	if r.System, err = k.System(); err != nil {
		errs = append(errs, err)
	}
	// UI fails exactly when System does; the error is already recorded.
	r.UI, _ = k.UI()
	if r.App, err = k.App(); err != nil {
		errs = append(errs, err)
	}
	if r.DeploymentTarget, err = k.DeploymentTarget(); err != nil {
		errs = append(errs, err)
	}
	if r.BaseSDK, err = k.BaseSDK(); err != nil {
		errs = append(errs, err)
	}

	s := k.Screen()
	r.Screen = &ScreenReport{
		Screen:        *s,
		Resolution:    s.Resolution(),
		IsRetina:      s.IsRetina(),
		IsRetinaHD:    s.IsRetinaHD(),
		Is4InchSize:   s.Is4InchSize(),
		Is4_7InchSize: s.Is4_7InchSize(),
		Is5_5InchSize: s.Is5_5InchSize(),
		SizeClass:     s.Class().String(),
	}

	hw := k.Hardware()
	r.Hardware = &HardwareReport{Hardware: *hw, ModelName: hw.ModelName()}

	return r, errors.Join(errs...)
}
