package hardware

// Flags are the device categories a model belongs to.
type Flags struct {
	IsIPodTouch bool `json:"is_ipod_touch"`
	IsIPhone    bool `json:"is_iphone"`
	IsIPad      bool `json:"is_ipad"`
	IsIPadMini  bool `json:"is_ipad_mini"`
	IsSimulator bool `json:"is_simulator"`
}

// CategoryFlags derives the category flags of m.
// Every iPad Mini is also an iPad.
func CategoryFlags(m Model) Flags {
	return Flags{
		IsIPodTouch: m >= IPodTouch3G && m <= IPodTouch5G,
		IsIPhone:    m >= IPhone3Gs && m <= IPhone6Plus,
		IsIPad:      m >= IPad1 && m <= IPadMini3,
		IsIPadMini:  m >= IPadMini1 && m <= IPadMini3,
		IsSimulator: m == Simulator,
	}
}

// IsIPodTouch reports whether m is an iPod touch.
func (m Model) IsIPodTouch() bool { return CategoryFlags(m).IsIPodTouch }

// IsIPhone reports whether m is an iPhone.
func (m Model) IsIPhone() bool { return CategoryFlags(m).IsIPhone }

// IsIPad reports whether m is an iPad, Minis included.
func (m Model) IsIPad() bool { return CategoryFlags(m).IsIPad }

// IsIPadMini reports whether m is an iPad Mini.
func (m Model) IsIPadMini() bool { return CategoryFlags(m).IsIPadMini }

// IsSimulator reports whether m is the simulator.
func (m Model) IsSimulator() bool { return m == Simulator }

// Hardware describes the device the process runs on.
type Hardware struct {
	// ModelID is the raw identifier reported by the platform, for example "iPhone4,1".
	ModelID string `json:"model_id"`
	Model   Model  `json:"model"`
	Flags
}

// ModelName returns the marketing name, for example "iPhone 4S".
func (h Hardware) ModelName() string { return DisplayName(h.Model) }
