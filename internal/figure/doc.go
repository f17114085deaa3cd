// Package figure wraps the gonum plot stack behind small Figure and Axes
// types sized for scatter rendering.
//
// A [Figure] owns a row-major grid of [Axes] and saves to PNG, JPEG or
// SVG (format chosen by file extension). Each Axes records the series
// drawn on it, so the same figure can also be previewed in the terminal
// on a Braille canvas without rasterizing.
//
// The underlying plot objects are process-wide, single-threaded
// resources; figures must not be drawn from multiple goroutines.
package figure
