package casing

import "context"

// Pending is the deferred result of a conversion running on its own goroutine.
type Pending struct {
	done chan struct{}
	out  string
}

// Run starts fn on a new goroutine and returns a handle to its result.
func Run(fn func() string) *Pending {
	p := &Pending{done: make(chan struct{})}
	go func() {
		p.out = fn()
		close(p.done)
	}()
	return p
}

// ConvertAsync runs Convert(s, style) asynchronously.
func ConvertAsync(s string, style Style) *Pending {
	return Run(func() string { return Convert(s, style) })
}

// ToCamelCaseAsync runs ToCamelCase asynchronously.
func ToCamelCaseAsync(s string) *Pending {
	return ConvertAsync(s, Camel)
}

// ToPascalCaseAsync runs ToPascalCase asynchronously.
func ToPascalCaseAsync(s string) *Pending {
	return ConvertAsync(s, Pascal)
}

// Done is closed once the result is available.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the result is available or ctx is done. Giving up on the
// wait does not stop the conversion.
func (p *Pending) Wait(ctx context.Context) (string, error) {
	select {
	case <-p.done:
		return p.out, nil
	default:
	}

	select {
	case <-p.done:
		return p.out, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
