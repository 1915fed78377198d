// Package errors provides the structured error type used across rpg-stats.
//
// Errors carry a Code (the gRPC-compatible category), an optional Reason
// (the stat engine failure kind), a user-facing message, an optional cause,
// and metadata.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("ruleset not found")
//	err := errors.StatNotFoundf("no such stat: %q", name)
//
// Adding metadata:
//
//	err := errors.RuleValidationf("invalid cap %q", raw).
//	    WithMeta("section", section).
//	    WithMeta("key", "cap")
//
// Wrapping errors keeps code and reason:
//
//	if err := stat.Update(); err != nil {
//	    return errors.Wrapf(err, "failed to update %s", stat.Name())
//	}
//
// # Reasons
//
// The engine reports its failure kinds as reasons on top of a code:
//   - ORPHAN_STAT (FailedPrecondition): update on a stat with no owner
//   - STAT_NOT_FOUND (NotFound): lookup of an unregistered stat
//   - RULE_VALIDATION (InvalidArgument): rule option failed type/enum checks
//   - RULE_NOT_FOUND (NotFound): no rule section for a stat or for lvl
//   - INVALID_TYPE (InvalidArgument): nil stat, nil rule table, non-whole level
//
// Checking:
//
//	if errors.IsOrphanStat(err) {
//	    // claim the stat first
//	}
//
// errors.Is matches on code, and on reason when the target has one:
//
//	errors.Is(err, errors.StatNotFoundf(""))  // reason-specific
//	errors.Is(err, errors.NotFound(""))       // any NOT_FOUND
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC Integration
//
// Handlers convert with ToGRPCError; the reason and metadata travel in an
// errdetails.ErrorInfo detail and come back through FromGRPCError.
package errors
