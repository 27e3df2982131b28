// Package devicekit reports facts about the device an application runs on:
// OS version, UI idiom, screen, app identity and version, hardware model, and
// the deployment target and base SDK the app was built with.
//
// A Kit is built once from a platform.Provider and passed to the code that
// needs it, directly or through a context.Context. Each group of facts is
// resolved on first access and cached for the lifetime of the Kit.
//
// # Basic Usage
//
//	p, err := platform.Host(platform.Snapshot{
//		Idiom:        platform.IdiomPhone,
//		Scale:        2,
//		ScreenWidth:  320,
//		ScreenHeight: 568,
//		AppVersion:   "1.4.2",
//	})
//	if err != nil {
//		return err
//	}
//	kit := devicekit.New(p, devicekit.WithLogger(log))
//
//	if kit.Screen().Is4InchSize() {
//		// tall layout
//	}
//
//	sys, err := kit.System()
//	if err != nil {
//		return err // *version.ParseError for a malformed OS version
//	}
//	if ok, _ := sys.Version.IsGreaterThanOrEqualTo("8.0"); ok {
//		// OS 8 APIs
//	}
//
//	if hw := kit.Hardware(); hw.IsIPadMini {
//		// small tablet
//	}
//
// # Context
//
// WithContext and FromContext carry the Kit through request or task
// contexts. LoggerExtractor plugs into logger.WithContextExtractors so every
// record logged with such a context is tagged with the device model and OS
// version.
//
// # Errors
//
// Groups that parse a version (System, UI, App, DeploymentTarget, BaseSDK)
// return the *version.ParseError of a malformed version string, wrapped with
// the group name. The error is cached like the value: the same error is
// returned on every call. Unknown hardware is not an error; it resolves to
// hardware.Unknown.
package devicekit
