package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodePermissionDenied   Code = "PERMISSION_DENIED"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeAborted            Code = "ABORTED"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeDataLoss           Code = "DATA_LOSS"
	CodeUnauthenticated    Code = "UNAUTHENTICATED"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Reason narrows a code down to a stat engine failure kind
type Reason string

// Stat engine failure reasons
const (
	// ReasonOrphanStat is an update on a stat nobody owns
	ReasonOrphanStat Reason = "ORPHAN_STAT"
	// ReasonStatNotFound is a lookup of a stat the owner does not hold
	ReasonStatNotFound Reason = "STAT_NOT_FOUND"
	// ReasonRuleValidation is a rule option that failed type or enum checks
	ReasonRuleValidation Reason = "RULE_VALIDATION"
	// ReasonRuleNotFound is a stat or the leveling rule with no rule section
	ReasonRuleNotFound Reason = "RULE_NOT_FOUND"
	// ReasonInvalidType is a wrongly shaped argument (nil stat, nil table, non-whole level)
	ReasonInvalidType Reason = "INVALID_TYPE"
)

// String returns the string representation of the reason
func (r Reason) String() string {
	return string(r)
}
