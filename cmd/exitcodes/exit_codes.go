package exitcodes

const (
	// ================================
	// Platform-universal exit codes
	// ================================

	// ExitCodeSuccess indicates no errors or failures had occurred.
	ExitCodeSuccess = 0

	// ExitCodeGeneralError indicates some type of general error occurred.
	ExitCodeGeneralError = 1

	// ================================
	// Application-specific exit codes
	// ================================
	// Note: Despite not being standardized, exit codes 2-5 are often used for common use cases, so we avoid them.

	// ExitCodeToleranceExceeded indicates compare-gas found at least one difference outside of the tolerance. It
	// shares its value with ExitCodeGeneralError since CI pipelines only distinguish zero from non-zero here.
	ExitCodeToleranceExceeded = 1

	// ExitCodeHandledError indicates that there was an error that was already logged, so it should not be printed
	// again when bubbled up to the top-level.
	ExitCodeHandledError = 6

	// ExitCodeCheckFailed indicates a check ran to completion and reported a failure, such as mismatching remappings
	// or no interpreter satisfying a constraint.
	ExitCodeCheckFailed = 7
)
