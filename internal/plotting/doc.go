// Package plotting renders precomputed embeddings from a dataset onto
// scatter figures.
//
// Four entry points cover the public surface:
//
//   - [Embedding]: scatter of a named embedding, with per-row coloring
//     ([PHATE], [TriMap] and [UMAP] are fixed-basis shorthands)
//   - [TimeSeriesPanels]: one panel per time point of a categorical
//     attribute, in first-seen order
//   - [ProjectionScatter]: the generic scatter primitive the others
//     build on, accepting named or literal coordinates
//   - [MarkerTrajectory]: marker trends along a branching trajectory,
//     delegated to the trajectory package
//
// Every operation shares the display contract in [DisplayOpts]: return
// the figure, return the axes, or preview to the terminal and return
// nothing; an optional save path writes the figure to disk instead.
package plotting
