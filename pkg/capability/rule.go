package capability

import (
	"context"

	"github.com/dmitrymomot/devicekit"
)

// Rule decides whether a capability is available on the device described by
// the devicekit.Kit stored in ctx.
type Rule interface {
	Evaluate(ctx context.Context) (bool, error)
}

// RuleFunc adapts a function to the Rule interface.
type RuleFunc func(ctx context.Context) (bool, error)

// Evaluate calls f(ctx).
func (f RuleFunc) Evaluate(ctx context.Context) (bool, error) { return f(ctx) }

// kitRule builds a rule from a predicate over the kit in ctx.
func kitRule(pred func(k *devicekit.Kit) (bool, error)) Rule {
	return RuleFunc(func(ctx context.Context) (bool, error) {
		k := devicekit.FromContext(ctx)
		if k == nil {
			return false, ErrNoKit
		}
		return pred(k)
	})
}
