// Package version parses dotted numeric version strings such as "6.1.3" and
// orders them numerically by their major, minor and micro components.
//
// Missing trailing components default to zero, so "7", "7.0" and "7.0.0" are
// equal, and components are compared as integers, so "7.10" is greater than
// "7.9".
//
// # Basic Usage
//
//	v, err := version.Parse("8.1.2")
//	if err != nil {
//		var perr *version.ParseError
//		if errors.As(err, &perr) {
//			log.Printf("bad segment %q", perr.Segment)
//		}
//		return err
//	}
//
//	ok, err := v.IsGreaterThanOrEqualTo("8.0")
//	// ok == true
//
// # Build Constants
//
// Deployment target and base SDK versions are usually baked in by the
// toolchain as a single integer (major*10000 + minor*100 + micro).
// FromPacked and Version.Packed convert between the two forms:
//
//	version.FromPacked(80100).String() // "8.1.0"
package version
