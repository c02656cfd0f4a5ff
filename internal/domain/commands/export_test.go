package commands

import "time"

// CloneFolderName exports cloneFolderName for testing.
var CloneFolderName = cloneFolderName //nolint:gochecknoglobals // test export

// SetClock replaces the clock used for the SHA annotation.
func SetClock(cmd *BumpUpstreamShasCommand, now func() time.Time) {
	cmd.now = now
}
