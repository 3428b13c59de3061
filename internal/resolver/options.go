package resolver

import "github.com/letp-labs/simdb/pkg/log"

// Option configures optional behavior of a Resolver.
type Option func(*Resolver)

// WithSite sets the active bench site. When an operator name contains
// "Amarisoft", the resolved carrier becomes "<Name>_<site>".
func WithSite(site string) Option {
	return func(r *Resolver) {
		r.site = site
	}
}

// WithLogger sets a custom logger for lookup diagnostics.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}
