// Package domain defines the core data model shared across the app.
// It contains plain types only, re-exported from the types subpackage.
package domain
