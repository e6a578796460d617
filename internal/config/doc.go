// Package config loads the srgmap configuration file.
//
// The file is YAML:
//
//	version: "1"
//	mappings_dir: ./mappings
//	dev_mode: false
//	resources:
//	  classes: classes.csv
//	  fields: fields.csv
//	  methods: methods.csv
//
// Every key is optional. The embedding environment can override dev_mode
// with the SRGMAP_DEV_MODE variable.
package config
