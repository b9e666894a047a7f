// Package preset loads named driver tunings from YAML.
//
// A preset file holds a map of profiles:
//
//	profiles:
//	  camera:
//	    frequency: 1.5
//	    damping: 0.8
//	    response: 0
//	    update_mode: late_update
//	  hover:
//	    frequency: 2
//	    damping: 0.4
//	    response: 2
//	    rotation_mode: velocity
//	    tilt:
//	      angle: 20
//	      spring: {frequency: 1.5, damping: 0.6, response: 1}
//
// Fields left out keep the values of DefaultProfile. Profiles are validated
// when loaded, and Profile.Options turns one into driver constructor options.
package preset
