// internal/config/validator.go
//
// Thin wrapper around go-playground/validator.
//
// Context
// -------
// `internal/config/loader.go` calls `validateStruct` immediately after
// secret resolution.  Any tag mismatch or validation error aborts
// startup, ensuring the binary never runs with partial, malformed, or
// missing configuration.
//
// The same validator instance is exported through `Validate` for the API
// layer, which re-validates admin payloads server side with the same
// rule set and error texture.
//
// Notes
// -----
//   • Oxford commas, two spaces after periods.

package config

import "github.com/go-playground/validator/v10"

//
// validator instance (package-level singleton)
//

var v = validator.New()

//
// public API
//

// validateStruct returns the first validation error, or nil on success.
func validateStruct(c *Config) error {
	return v.Struct(c)
}

// Validate runs tag validation on any struct.  Used by API handlers to
// re-check admin payloads regardless of client-side schema checks.
func Validate(s any) error {
	return v.Struct(s)
}
