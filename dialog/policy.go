package dialog

import "fmt"

// RecreatePolicy decides what a repeated create-wallet does for an owner
// that already has keys. Both outcomes are deterministic; the choice is
// configuration, never a race.
type RecreatePolicy string

const (
	// RecreateReject answers with "already exists" and keeps the record
	RecreateReject RecreatePolicy = "reject"

	// RecreateOverwrite replaces the record with a fresh keypair
	RecreateOverwrite RecreatePolicy = "overwrite"
)

// MidflowPolicy decides what a command issued mid-conversation does.
type MidflowPolicy string

const (
	// MidflowReject re-prompts for the pending step
	MidflowReject MidflowPolicy = "reject"

	// MidflowReset discards the in-progress flow and handles the command
	MidflowReset MidflowPolicy = "reset"
)

// Options configures a Manager. Zero values fall back to the safe
// defaults (reject on both policies, ed25519 as scheme).
type Options struct {
	Recreate      RecreatePolicy
	Midflow       MidflowPolicy
	DefaultScheme string
}

func (o *Options) Validate() error {
	switch o.Recreate {
	case "", RecreateReject, RecreateOverwrite:
	default:
		return fmt.Errorf("unsupported recreate policy: %s", o.Recreate)
	}
	switch o.Midflow {
	case "", MidflowReject, MidflowReset:
	default:
		return fmt.Errorf("unsupported midflow policy: %s", o.Midflow)
	}
	return nil
}

func (o *Options) withDefaults() Options {
	out := *o
	if out.Recreate == "" {
		out.Recreate = RecreateReject
	}
	if out.Midflow == "" {
		out.Midflow = MidflowReject
	}
	if out.DefaultScheme == "" {
		out.DefaultScheme = "ed25519"
	}
	return out
}
