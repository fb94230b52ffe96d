package domain

import types "apple/internal/domain/types"

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Apple = types.Apple
)

// NewApple returns a fresh Apple with every field unset.
var NewApple = types.New
