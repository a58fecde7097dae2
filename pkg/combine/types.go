package combine

// Options carries run-scoped knobs that sit outside the resolved config.
type Options struct {
	Clipboard  bool // copy the artifact to the system clipboard after writing
	MaxWorkers int  // concurrent file readers; 0 means one per CPU
}

// Entry is one kept path from the walk, in traversal order.
type Entry struct {
	Path  string // absolute path
	Depth int    // 0 for the root itself
	IsDir bool
}

// FileSection is one file's formatted contribution to the artifact.
type FileSection struct {
	Index   int    // position in traversal order
	Path    string // absolute path of the source file
	Name    string // base name shown in the section banner
	Content string // banner plus raw file contents
}

// readJob queues one file for the worker pool. The index pins the finished
// section back into traversal order no matter which worker finishes first.
type readJob struct {
	index int
	path  string
	name  string
	size  int64
}
