// Package opt contains package-level Optional transforms that change the
// payload type, which Go methods cannot express.
//
// Highlights:
// - Map/Switch: transform or bind into an Optional of another type
// - Finally: reduce to a concrete value via present/absent handlers
// - Of/FromPtr/ToPtr: adapt the comma-ok and pointer conventions
// - Flatten: collapse a nested Optional
package opt
