// Package config loads complexible settings from TOML or YAML files and the
// environment.
//
// Package: config
// Title: Configuration
// Description: A typed Config with general, log and precision sections.
//              Files are found through COMPLEXIBLE_CONFIG or discovery, keys
//              absent from a file keep their defaults, and COMPLEXIBLE_*
//              variables override single settings.
// Author: kevmasajedi
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-09
//
// Change History:
// - 2025-02-09 v0.1.0: Initial implementation
//
// Example file:
//
//	[general]
//	name = "complexible"
//
//	[log]
//	level = "info"
//	format = "console"
//
//	[precision]
//	equality_places = 5
//	pretty_places = 2
//
// Usage:
//
//	cfg, err := config.LoadFromEnv()
//	if err != nil {
//		return err
//	}
//	fmt.Println(cfg.Precision.EqualityPlaces)
package config
