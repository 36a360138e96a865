// Package attributes provides expression evaluation for custom gesture span
// attributes.
//
// Expressions are evaluated against the fields of each classified gesture
// (type, coordinates, displacement, duration) using the expr language. They
// are compiled once at startup, so a bad expression fails fast instead of
// per gesture.
package attributes
