// Package cluster links 3-D points into components in order of increasing
// distance, feeding the kdtree closest-pair stream into a union–find.
//
// What:
//
//	ConnectClosest takes the k closest pairs and unions their endpoints.
//	Pairs whose endpoints already share a component still count toward k.
//	LargestProduct multiplies the sizes of the m largest components left
//	after that. LastLink keeps linking until one component remains and
//	returns the pair that closed it.
//
// Complexity:
//
//	Each pair costs O(log n) amortized from the stream plus O(α(n)) for the
//	union, so k pairs take roughly O((n + k) log n).
//
// Errors:
//
//	ErrTooFewComponents when LargestProduct asks for more components than
//	exist.
package cluster
