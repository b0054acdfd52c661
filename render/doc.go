// Package render draws k-means frames.
//
// PNG rasterises points coloured by cluster and centroids as crosses with
// gogpu/gg; HTML writes an interactive go-echarts scatter chart. Neither is
// needed by the clustering packages.
package render
