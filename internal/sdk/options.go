// SPDX-License-Identifier: MPL-2.0

package sdk

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrOptionsFrozen is the sentinel error wrapped by FrozenOptionsError.
var ErrOptionsFrozen = errors.New("options frozen after context binding")

type (
	// Options is the write-once instance configuration. Every field is
	// mutable until the instance binds its downstream context; from that
	// point on any write fails with a FrozenOptionsError. The transition
	// happens exactly once and is irreversible.
	Options struct {
		useBundle bool
		features  map[string]bool
		frozen    bool
	}

	// FrozenOptionsError is returned when an option write arrives after
	// context binding. It wraps ErrOptionsFrozen for errors.Is()
	// compatibility.
	FrozenOptionsError struct {
		Field string
	}
)

// Error implements the error interface for FrozenOptionsError.
func (e *FrozenOptionsError) Error() string {
	return fmt.Sprintf("cannot set %s: options are frozen after context binding", e.Field)
}

// Unwrap returns ErrOptionsFrozen for errors.Is() compatibility.
func (e *FrozenOptionsError) Unwrap() error { return ErrOptionsFrozen }

// NewOptions creates a mutable Options with everything off.
func NewOptions() *Options {
	return &Options{features: make(map[string]bool)}
}

// SetUseBundle sets whether the instance should load the precompiled
// bundle. Fails once the options are frozen.
func (o *Options) SetUseBundle(v bool) error {
	if o.frozen {
		return &FrozenOptionsError{Field: "use_bundle"}
	}
	o.useBundle = v
	return nil
}

// UseBundle reports whether precompiled-bundle loading is enabled.
func (o *Options) UseBundle() bool { return o.useBundle }

// EnableFeature turns on a named feature flag. Fails once the options are
// frozen.
func (o *Options) EnableFeature(name string) error {
	if o.frozen {
		return &FrozenOptionsError{Field: "feature " + name}
	}
	o.features[name] = true
	return nil
}

// FeatureEnabled reports whether the named feature flag is on.
func (o *Options) FeatureEnabled(name string) bool { return o.features[name] }

// Features returns the enabled feature flags in sorted order.
func (o *Options) Features() []string {
	var out []string
	for _, name := range slices.Sorted(maps.Keys(o.features)) {
		if o.features[name] {
			out = append(out, name)
		}
	}
	return out
}

// Frozen reports whether the options have been frozen.
func (o *Options) Frozen() bool { return o.frozen }

// freeze makes the options permanently read-only. Called by the instance
// when the downstream context is first constructed.
func (o *Options) freeze() { o.frozen = true }
