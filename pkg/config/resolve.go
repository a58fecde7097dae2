package config

// Merge resolves the effective configuration from the CLI-side config and an
// optional file config. Scalars prefer an explicitly typed flag, then the
// file, then the flag default. Lists and size bounds prefer any CLI value,
// then the file. File list entries get the same normalization the CLI side
// already received, so both sources end up on equal footing.
func Merge(cli Config, explicit ExplicitFlags, file *FileConfig) Config {
	merged := cli
	if file == nil {
		return merged
	}

	if !explicit.RootDirectory && file.Directory != nil {
		merged.RootDirectory = *file.Directory
	}
	if !explicit.OutputPath && file.Output != nil {
		merged.OutputPath = *file.Output
	}
	if !explicit.RespectIgnoreFile && file.RespectGitignore != nil {
		merged.RespectIgnoreFile = *file.RespectGitignore
	}
	if !explicit.TreeOnly && file.TreeOnly != nil {
		merged.TreeOnly = *file.TreeOnly
	}

	if merged.IncludeDirs == nil {
		merged.IncludeDirs = normalizeList(file.IncludeDirs)
	}
	if merged.ExcludeDirs == nil {
		merged.ExcludeDirs = normalizeList(file.ExcludeDirs)
	}
	if merged.IncludeExtensions == nil {
		merged.IncludeExtensions = normalizeExtList(file.IncludeExt)
	}
	if merged.ExcludeExtensions == nil {
		merged.ExcludeExtensions = normalizeExtList(file.ExcludeExt)
	}
	if merged.IncludeFilenames == nil {
		merged.IncludeFilenames = normalizeList(file.IncludeFiles)
	}
	if merged.ExcludeFilenames == nil {
		merged.ExcludeFilenames = normalizeList(file.ExcludeFiles)
	}
	if merged.MinSize == nil {
		merged.MinSize = file.MinSize
	}
	if merged.MaxSize == nil {
		merged.MaxSize = file.MaxSize
	}
	return merged
}
