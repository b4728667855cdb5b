package cli

const (
	FlagHome     = "home"
	FlagABI      = "abi"
	FlagLogLevel = "log-level"
)
