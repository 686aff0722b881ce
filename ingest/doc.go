// Package ingest loads delivery graphs from CSV files into a *core.Graph.
//
// Rows are decoded into tagged variants before they reach the graph:
//
//	VertexRow       id,lat,long
//	EdgeRow         from,to,weight
//	LabeledEdgeRow  from,to,weight,fromLabel,toLabel
//
// A RowIterator yields those variants; CSVSource is the file-backed iterator
// and Classify decides the variant of one record from the declared Kind and
// its column count. Loader applies rows to a graph, counting rejections and
// malformed rows instead of aborting, so one bad line never loses a dataset.
//
// Two file layouts are supported:
//
//   - LoadFiles(g, nodesPath, edgesPath): positions from a nodes file, edges
//     from an edges file.
//   - LoadFile(g, edgesPath): a single edges file; endpoints are created on the
//     fly with unknown coordinates.
package ingest
