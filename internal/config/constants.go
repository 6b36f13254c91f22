package config

// Backend names accepted by STORAGE_BACKEND and SESSION_BACKEND
const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

const maxPort = 65535

const (
	ErrMsgInvalidEnv     = "invalid environment"
	ErrMsgInvalidValue   = "invalid configuration value"
	ErrMsgUnknownBackend = "unknown backend"
)
