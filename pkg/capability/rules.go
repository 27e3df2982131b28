package capability

import (
	"context"
	"slices"

	"github.com/dmitrymomot/devicekit"
	"github.com/dmitrymomot/devicekit/pkg/hardware"
	"github.com/dmitrymomot/devicekit/pkg/platform"
	"github.com/dmitrymomot/devicekit/pkg/screen"
	"github.com/dmitrymomot/devicekit/pkg/version"
)

// Always returns a rule with a fixed outcome. It needs no kit.
func Always(v bool) Rule {
	return RuleFunc(func(context.Context) (bool, error) { return v, nil })
}

// MinOSVersion matches devices running v or later.
func MinOSVersion(v version.Version) Rule {
	return kitRule(func(k *devicekit.Kit) (bool, error) {
		sys, err := k.System()
		if err != nil {
			return false, err
		}
		return sys.Version.Compare(v) != version.Less, nil
	})
}

// MaxOSVersion matches devices running v or earlier.
func MaxOSVersion(v version.Version) Rule {
	return kitRule(func(k *devicekit.Kit) (bool, error) {
		sys, err := k.System()
		if err != nil {
			return false, err
		}
		return sys.Version.Compare(v) != version.Greater, nil
	})
}

// Idiom matches devices whose user interface idiom is i.
func Idiom(i platform.Idiom) Rule {
	return kitRule(func(k *devicekit.Kit) (bool, error) {
		ui, err := k.UI()
		if err != nil {
			return false, err
		}
		switch i {
		case platform.IdiomPad:
			return ui.IsIdiomIPad, nil
		case platform.IdiomPhone:
			return ui.IsIdiomIPhone, nil
		default:
			return !ui.IsIdiomIPad && !ui.IsIdiomIPhone, nil
		}
	})
}

// Retina matches screens with a scale of at least 2.
func Retina() Rule {
	return kitRule(func(k *devicekit.Kit) (bool, error) { return k.Screen().IsRetina(), nil })
}

// RetinaHD matches screens with a scale of at least 3.
func RetinaHD() Rule {
	return kitRule(func(k *devicekit.Kit) (bool, error) { return k.Screen().IsRetinaHD(), nil })
}

// ScreenClass matches screens of any of the given size classes.
func ScreenClass(classes ...screen.SizeClass) Rule {
	classes = slices.Clone(classes)
	return kitRule(func(k *devicekit.Kit) (bool, error) {
		return slices.Contains(classes, k.Screen().Class()), nil
	})
}

// Models matches any of the given hardware models.
func Models(models ...hardware.Model) Rule {
	models = slices.Clone(models)
	return kitRule(func(k *devicekit.Kit) (bool, error) {
		return slices.Contains(models, k.Hardware().Model), nil
	})
}

// Simulator matches processes running in the simulator.
func Simulator() Rule {
	return kitRule(func(k *devicekit.Kit) (bool, error) { return k.Hardware().IsSimulator, nil })
}

// All matches when every rule matches. It stops at the first rule that does
// not match or fails. All of nothing matches.
func All(rules ...Rule) Rule {
	rules = slices.Clone(rules)
	return RuleFunc(func(ctx context.Context) (bool, error) {
		for _, r := range rules {
			ok, err := r.Evaluate(ctx)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	})
}

// Any matches when at least one rule matches. It stops at the first rule that
// matches or fails. Any of nothing does not match.
func Any(rules ...Rule) Rule {
	rules = slices.Clone(rules)
	return RuleFunc(func(ctx context.Context) (bool, error) {
		for _, r := range rules {
			ok, err := r.Evaluate(ctx)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	})
}

// Not inverts r. Errors are passed through unchanged.
func Not(r Rule) Rule {
	return RuleFunc(func(ctx context.Context) (bool, error) {
		ok, err := r.Evaluate(ctx)
		if err != nil {
			return false, err
		}
		return !ok, nil
	})
}
