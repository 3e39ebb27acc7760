package hull

// halfStablePartition reorders ps in place so that all elements satisfying
// pred come first, preserving their relative order. Elements failing pred
// are pushed to the back in arbitrary order. Returns the index of the
// first element that fails pred.
//
// Only the kept side keeps its order, which is all the hull recursion
// needs; a fully stable partition would cost extra space for nothing.
func halfStablePartition(ps []Vec, pred func(Vec) bool) int {
	pivot := 0

	for i := range ps {
		if pred(ps[i]) {
			ps[i], ps[pivot] = ps[pivot], ps[i]
			pivot++
		}
	}

	return pivot
}
