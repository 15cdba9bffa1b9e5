// Package fallback resolves values across known schema variants by trying an
// ordered list of probes and keeping the first that succeeds. It exists to
// mask table and column naming drift between deployments; new deployments
// should pin a single variant in config and never reach the probing path.
package fallback

import "errors"

// ErrExhausted is returned when every probe fails.
var ErrExhausted = errors.New("all schema variants failed")

// Probe is one candidate way of producing a value.
type Probe[T any] struct {
	Name string
	Run  func() (T, error)
}

// First runs probes strictly in order and returns the result and name of the
// first probe that does not error, even if it produced a zero value. Each
// probe is attempted at most once. On exhaustion the zero value is returned
// together with ErrExhausted joined with every probe error.
func First[T any](probes ...Probe[T]) (T, string, error) {
	errs := make([]error, 0, len(probes)+1)
	for _, p := range probes {
		v, err := p.Run()
		if err == nil {
			return v, p.Name, nil
		}
		errs = append(errs, err)
	}
	var zero T
	errs = append([]error{ErrExhausted}, errs...)
	return zero, "", errors.Join(errs...)
}
