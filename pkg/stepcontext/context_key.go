package stepcontext

import "context"

type stepContextKey struct{}

// NewContext returns a context.Context carrying the step context c.
func NewContext(ctx context.Context, c *Context) context.Context {
	return context.WithValue(ctx, stepContextKey{}, c)
}

// FromContext extracts the step context from ctx.
// Returns nil if not set.
func FromContext(ctx context.Context) *Context {
	if v := ctx.Value(stepContextKey{}); v != nil {
		if c, ok := v.(*Context); ok {
			return c
		}
	}
	return nil
}
