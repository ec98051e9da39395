package constants

const (
	// Date Layout
	DateFormat = "2006-01-02"
)

const (
	BackupFilePrefix = "budgt-backup"
)
