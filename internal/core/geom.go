// Package core provides fundamental types and utilities for the arcade.
// It contains no terminal dependencies so game logic stays pure and testable.
package core

// Point is a cell position on the character grid.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
