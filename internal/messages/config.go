package messages

// Config messages.
const (
	// ConfigReadFmt formats a config file read failure.
	ConfigReadFmt              = "read config %s: %w"
	ConfigInvalidFmt           = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt  = "%s contains unrecognized keys: %v"
	ConfigValidationGuidance   = "(see the [toolchain] and [lsp.<tool>.binary] tables)"
	ConfigInvalidGCScopeFmt    = "%s: toolchain.gc_scope must be %q or %q, got %q"
	ConfigInvalidCloneDepthFmt = "%s: toolchain.clone_depth must be zero or positive, got %d"
	ConfigInvalidRepoFmt       = "%s: toolchain.repo must be in the form owner/name, got %q"
	ConfigEmptyOverridePathFmt = "%s: lsp.%s.binary.path must not be empty when set"
	ConfigExpandPathFmt        = "expand path %q: %w"
	ConfigResolveCacheDirFmt   = "resolve user cache directory: %w"
)

// Command assembly messages.
const (
	// AssemblerResolverRequired indicates an Assembler without a resolver.
	AssemblerResolverRequired    = "command assembler requires an executable resolver"
	AssemblerOverrideLookupError = "settings lookup failed; ignoring override"
	AssemblerUsingOverride       = "using configured binary override"
	AssemblerResolved            = "launch command assembled"
)

// Project root messages.
const (
	// RootStartRequired indicates an empty start directory.
	RootStartRequired   = "root search start directory is required"
	RootAbsFmt          = "resolve absolute path for %s: %w"
	RootStatFmt         = "stat %s: %w"
	RootMarkerNotDirFmt = "%s exists but is not a directory"
)
