// SPDX-License-Identifier: EPL-2.0

// Package config loads run settings from YAML and builds the pipeline
// components they describe.
//
//	converter: scan
//	scale: bark
//	scan:
//	  orientation: circular
//	  strips: 8
//	  freqs_per_strip: 24
//	  frame_duration: 750ms
//
// Keys left out keep the values of Default.
package config
