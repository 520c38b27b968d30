package logging

// These constants are used to identify the various services that may do some logging
const (
	// CLI_SERVICE is the constant used to identify the cmd package
	CLI_SERVICE = "cli"
	// GASDIFF_SERVICE is the constant used to identify the gasdiff package
	GASDIFF_SERVICE = "gasdiff"
	// DOCTOR_SERVICE is the constant used to identify the doctor package
	DOCTOR_SERVICE = "doctor"
	// INTERPRETER_SERVICE is the constant used to identify the interpreter package
	INTERPRETER_SERVICE = "interpreter"
)
