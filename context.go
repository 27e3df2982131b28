package devicekit

import "context"

type kitKey struct{}

// WithContext returns a copy of ctx carrying k.
func WithContext(ctx context.Context, k *Kit) context.Context {
	return context.WithValue(ctx, kitKey{}, k)
}

// FromContext returns the Kit stored in ctx, or nil.
func FromContext(ctx context.Context) *Kit {
	if ctx == nil {
		return nil
	}
	k, _ := ctx.Value(kitKey{}).(*Kit)
	return k
}
