package ports

// ProgressCache caches derived project progress between reads. Mutating a
// project's tasks must invalidate its entry; storage never sees these
// values.
type ProgressCache interface {
	Get(projectID uint64) (int, bool)
	Set(projectID uint64, progress int)
	Invalidate(projectID uint64)
}
