package cli

var (
	ResolveRepoRef = resolveRepoRef
	WriteOutput    = writeOutput
)
