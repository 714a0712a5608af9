package cmd

const (
	FlagHome           = "home"
	FlagLogLevel       = "log_level"
	FlagOverwrite      = "overwrite"
	FlagAddress        = "address"
	FlagTransport      = "transport"
	FlagHeight         = "height"
	FlagOutputDocument = "output-document"
	FlagKeepVersions   = "keep-versions"
	FlagSequence       = "sequence"
)
