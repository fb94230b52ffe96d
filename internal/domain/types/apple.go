package types

import "strconv"

// Apple is a plain record of who owns an apple, its color and its weight.
//
// The zero value is ready to use: owner and color are empty and weight is 0.
// Apple carries no locking; callers sharing one across goroutines synchronise
// access themselves.
type Apple struct {
	owner  string
	color  string
	weight int
}

// New returns a fresh Apple with every field unset.
func New() *Apple { return &Apple{} }

// Owner returns the current owner.
func (a *Apple) Owner() string { return a.owner }

// Color returns the current color.
func (a *Apple) Color() string { return a.color }

// Weight returns the current weight.
func (a *Apple) Weight() int { return a.weight }

// SetOwner replaces the owner.
func (a *Apple) SetOwner(owner string) { a.owner = owner }

// SetColor replaces the color.
func (a *Apple) SetColor(color string) { a.color = color }

// SetWeight replaces the weight. Zero and negative values are stored as given.
func (a *Apple) SetWeight(weight int) { a.weight = weight }

// String renders the record as "<owner> : <color> : <weight>".
// Unset text fields render as empty strings.
func (a Apple) String() string {
	return a.owner + " : " + a.color + " : " + strconv.Itoa(a.weight)
}
