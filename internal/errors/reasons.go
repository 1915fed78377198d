package errors

// OrphanStatf creates an error for an update on an unowned stat
func OrphanStatf(format string, args ...interface{}) *Error {
	return Newf(CodeFailedPrecondition, format, args...).WithReason(ReasonOrphanStat)
}

// StatNotFoundf creates an error for a missing stat
func StatNotFoundf(format string, args ...interface{}) *Error {
	return Newf(CodeNotFound, format, args...).WithReason(ReasonStatNotFound)
}

// RuleValidationf creates an error for a rule option that failed validation
func RuleValidationf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidArgument, format, args...).WithReason(ReasonRuleValidation)
}

// RuleNotFoundf creates an error for a missing rule section
func RuleNotFoundf(format string, args ...interface{}) *Error {
	return Newf(CodeNotFound, format, args...).WithReason(ReasonRuleNotFound)
}

// InvalidTypef creates an error for a wrongly shaped argument
func InvalidTypef(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidArgument, format, args...).WithReason(ReasonInvalidType)
}

// IsOrphanStat checks if an error is an orphan stat error
func IsOrphanStat(err error) bool {
	return GetReason(err) == ReasonOrphanStat
}

// IsStatNotFound checks if an error is a stat not found error
func IsStatNotFound(err error) bool {
	return GetReason(err) == ReasonStatNotFound
}

// IsRuleValidation checks if an error is a rule validation error
func IsRuleValidation(err error) bool {
	return GetReason(err) == ReasonRuleValidation
}

// IsRuleNotFound checks if an error is a rule not found error
func IsRuleNotFound(err error) bool {
	return GetReason(err) == ReasonRuleNotFound
}

// IsInvalidType checks if an error is a type constraint error
func IsInvalidType(err error) bool {
	return GetReason(err) == ReasonInvalidType
}
