// Command apple builds an Apple record from flags and prints its rendering.
//
//	apple render --owner Alice --color Red --weight 150
//	Alice : Red : 150
package main
