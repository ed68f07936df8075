package constants

// Default vault layout
const (
	// DefaultVaultName is the folder created when no path is given.
	DefaultVaultName = "Template_Vault"

	// MetaDirName holds generation metadata inside a built vault.
	MetaDirName = ".vaultgen"

	// ManifestFileName is the generation manifest inside MetaDirName.
	ManifestFileName = "manifest.yaml"
)

// File permissions
const (
	StandardDirPerms  = 0o755 // Standard directory permissions
	StandardFilePerms = 0o644 // Standard file permissions
)
