// Package syntax parses the compact mini-languages used in merge schemas.
//
// # Grammar
//
//	reference := name [ "(" use { "," use } ")" ]
//	use       := member [ "as" alias ]
//	overrides := override { "," override }
//	override  := member ":" "[" [ dep { "," dep } ] "]"
//	strategy  := name [ digits ]
//
// Whitespace around names, commas and brackets is ignored. Names follow the
// identifier rules of common.IsIdent.
//
// Examples:
//
//	LandAnimal
//	LandAnimal(hunt, walk as walkSlow)
//	transitionToLand:[swim,walkSlow],hunt:[]
//	merge2
package syntax
