package constants

const (
	// DateFormat is the day-precision input format accepted by the CLI.
	DateFormat = "2006-01-02"
)
