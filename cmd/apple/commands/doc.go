// Package commands defines the apple CLI.
//
// Commands
//
//   - render    Build an Apple from --owner, --color and --weight and print it
//
// Flags that are not supplied leave the matching field unset, so
// `apple render` with no flags prints the rendering of a fresh record.
package commands
