package cmd

// addDoctorFlags adds the various flags for the doctor command
func addDoctorFlags() error {
	// Project root
	doctorCmd.Flags().String("root", "", "directory holding the Foundry and Wake configs (default is the working directory)")

	return nil
}
