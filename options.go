package rbset

import (
	"github.com/npillmayer/schuko/gconf"
)

// ConfigCheckInvariants is the global configuration key which switches on
// invariant checking for all new sets, unless overridden by option
// CheckInvariants. It is intended for hunting down bugs. Every insertion is
// followed by a complete check of the tree.
const ConfigCheckInvariants = "rbset-check-invariants"

// Option configures a set at creation time.
type Option func(*options)

type options struct {
	check    bool
	capacity int
}

// CheckInvariants makes a set verify the red-black properties after every
// insertion. A violation will panic.
func CheckInvariants(b bool) Option {
	return func(o *options) {
		o.check = b
	}
}

// Capacity pre-allocates room for n keys.
func Capacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

func makeOptions(opts []Option) options {
	o := options{
		check: gconf.GetBool(ConfigCheckInvariants),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
