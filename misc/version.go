// Package misc keeps build time information.
package misc

// Set at build time with -ldflags "-X masterlist/misc.version=... -X masterlist/misc.gitHash=..."
var (
	version = "dev"
	gitHash = "unknown"
)

const appName = "masterlist"

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
