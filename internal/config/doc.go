// Package config loads the optional HCL configuration file of gxlfixture.
//
// The file mirrors the command-line flags so that a project can check in its
// export layout once and run the tool without arguments:
//
//	input_dir = "graphs/gxl"
//	validate  = true
//
//	output {
//	  fixture_dir    = "graphs/optimal"
//	  test_file      = "internal/optimal/optimal_gen_test.go"
//	  test_package   = "optimal"
//	  fixture_prefix = "./graphs/optimal"
//	  manifest       = "${config_dir}/graphs/manifest.yaml"
//	}
//
//	logging {
//	  level  = lower(env("GXLFIXTURE_LOG_LEVEL"))
//	  format = "text"
//	}
//
// Expressions are evaluated with the variable config_dir (the directory
// holding the file) and the functions env, lower, upper, format and join.
// Every attribute is optional; values left unset fall back to the flag
// defaults.
package config
