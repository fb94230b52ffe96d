// Package types holds the plain data records used across the module.
package types
