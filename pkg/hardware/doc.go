// Package hardware classifies the device an application runs on.
//
// The platform reports a raw identifier such as "iPhone4,1" or "iPad4,4".
// Identify maps it to one member of the closed Model enumeration through a
// static table; identifiers missing from the table resolve to Unknown rather
// than failing, so unseen future devices never break callers. When the
// process runs inside the simulator the result is always Simulator, whatever
// the identifier says.
//
// # Basic Usage
//
//	hw := hardware.New("iPad4,4", false)
//	fmt.Println(hw.ModelName()) // "iPad Mini 2"
//	fmt.Println(hw.IsIPad)      // true
//	fmt.Println(hw.IsIPadMini)  // true
//
// # Extending the Table
//
// The default table covers the historical device list. Newer identifiers are
// added as extra rows on a dedicated classifier:
//
//	c := hardware.NewClassifier(hardware.WithIdentifiers(map[string]hardware.Model{
//		"iPhone7,1": hardware.IPhone6Plus,
//		"iPhone7,2": hardware.IPhone6,
//	}))
//	c.Identify("iPhone7,2", false) // hardware.IPhone6
package hardware
