// Package errors provides the structured error type used across rpg-loadout.
//
// Errors carry a Code, a user-facing Message, an optional Cause and free-form
// Meta. Wrapping preserves the code of the wrapped error so callers can branch
// on the category of a failure without string matching:
//
//	store, err := catalog.New(data)
//	if err != nil {
//	    return errors.Wrap(err, "failed to build catalog")
//	}
//
//	if errors.IsFailedPrecondition(err) {
//	    // nothing selected, ask the user to pick characters
//	}
//
// A Reason can be attached to tell apart failures that share a code:
//
//	err := errors.FailedPrecondition("no active character").WithReason("no_active_character")
//	errors.HasReason(err, "no_active_character") // true, also through Wrap
//
// Constructor configs validate themselves with a ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Catalog == nil {
//	    vb.RequiredField("Catalog")
//	}
//	return vb.Build()
//
// Rule predicates in the rules and items packages never return errors; only
// construction, I/O at the edges and build generation do.
package errors
