// Package capability gates application features on facts about the device.
//
// A Rule inspects the devicekit.Kit stored in the context and reports whether
// a capability is available. Rules cover OS version bounds, UI idiom, screen
// density and size class, hardware model and the simulator, and combine with
// All, Any and Not. A Registry names rules so call sites can ask for a gate by
// name.
//
//	reg := capability.NewRegistry()
//	reg.MustRegister("live-photos", capability.All(
//		capability.MinOSVersion(version.MustParse("8.0")),
//		capability.Not(capability.Simulator()),
//	))
//
//	ctx = devicekit.WithContext(ctx, kit)
//	if ok, err := reg.IsEnabled(ctx, "live-photos"); err == nil && ok {
//		// ...
//	}
//
// Rules that read a version fail with the kit's *version.ParseError when the
// underlying version string is malformed. Evaluating a kit rule against a
// context without a kit fails with ErrNoKit.
package capability
