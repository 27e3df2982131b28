// Package platform supplies raw device facts to the environment kit.
//
// Provider is the single capability the kit depends on. Every fact it returns
// is a primitive value straight from the host (OS version string, hardware
// identifier, simulator flag, UI idiom, screen metrics, bundle info and the
// build-time deployment target and base SDK), so all interpretation stays in
// the version, hardware and screen packages and can be tested without a
// device.
//
// # Providers
//
//   - NewStatic wraps a fixed Snapshot.
//   - FromEnv reads DEVICEKIT_* variables (and an optional .env file).
//   - Decode and LoadFile read a YAML snapshot.
//   - Profile returns an embedded snapshot of a known device.
//   - Host reads the OS version and hardware identifier from the kernel on
//     Apple platforms and fills the rest from a base Snapshot.
//
// # Usage
//
//	s, err := platform.Profile("iphone-6-plus")
//	if err != nil {
//		return err
//	}
//	kit := devicekit.New(platform.NewStatic(s))
//
// On a device, the integration layer passes the facts only it can know:
//
//	p, err := platform.Host(platform.Snapshot{
//		Idiom:        platform.IdiomPhone,
//		Scale:        scale,
//		ScreenWidth:  width,
//		ScreenHeight: height,
//		AppVersion:   shortVersion,
//	})
package platform
