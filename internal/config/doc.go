// Package config defines the settings of the link daemon and the control
// client and provides helpers to load, validate and save them in YAML format.
//
// Keys missing from the file keep their defaults, so a settings file only
// needs the values that differ.
package config
