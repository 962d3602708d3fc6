// Package kmeans implements the Lloyd clustering loop behind the
// posterizer's palette extraction.
//
// Pixels are clustered by squared Euclidean RGB distance. The caller
// seeds the assignment slice, Refine iterates update and assignment
// steps until no pixel moves or the iteration cap is hit, and the
// final centroids become palette entries. Clusters that lose all
// members keep a (0,0,0) centroid rather than being reseeded.
package kmeans
