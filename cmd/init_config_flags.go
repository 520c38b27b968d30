package cmd

// addInitConfigFlags adds the various flags for the init-config command
func addInitConfigFlags() error {
	// Output path for configuration
	initConfigCmd.Flags().String("out", "", "output path for the new project configuration file")

	return nil
}
