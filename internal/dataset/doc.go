// Package dataset holds row-annotated data shared by every renderer.
//
// A [Dataset] groups three keyed namespaces over a common row count:
//
//   - embeddings: named 2D+ coordinate arrays from external projection
//     algorithms (UMAP, PHATE, TriMap, ...)
//   - obs: named per-row attributes, string or float valued
//   - uns: free-form auxiliary values (metadata, computed tables)
//
// Missing keys surface as [*KeyError]; callers are expected to propagate
// them unmodified. Datasets load from and save to plain directories of
// CSV/JSON files, one file per array.
package dataset
