package domain

const (
	// ConfigFileName is the name of the interpreter configuration file.
	ConfigFileName = ".bsh.yaml"

	// ConfigEnvVar names an explicit configuration file path.
	ConfigEnvVar = "BSH_CONFIG"

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
