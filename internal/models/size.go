package models

// Size is a window size in logical units
type Size struct {
	Width  int
	Height int
}
