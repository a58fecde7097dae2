package ignore

// DefaultIgnoredFiles are ignored in every run, pattern file or not. Mostly
// lockfiles: large, generated, and useless as model input.
var DefaultIgnoredFiles = []string{
	"bun.lock",
	"package-lock.json",
	"yarn.lock",
	"pnpm-lock.yaml",
	"Cargo.lock",
	"uv.lock",
	".DS_Store",
}

// DefaultIgnoredDirs are skipped as whole subtrees. The decision engine also
// checks these against path components, ignoring case.
var DefaultIgnoredDirs = []string{
	"node_modules",
	".git",
	".svn",
	".hg",
	".idea",
	".vscode",
	"build",
	"dist",
	"target",
	"src-tauri",
}
