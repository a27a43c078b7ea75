// Package config loads the optional formantkit.yaml tool
// configuration:
//
//	analysis:
//	  timestamps: 10
//	  formants: 3
//	  ceiling: 5500
//	  ext: .wav
//	plot:
//	  dpi: 300
//	  amplitude_dpi: 1200
//	log:
//	  level: info
//
// Every key is optional; a partial file overrides just the keys it
// names. Command-line flags take precedence over the file.
package config
