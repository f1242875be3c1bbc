// Package buildinfo reports the version, date and commit a binary was built with.
package buildinfo

import "go.uber.org/zap"

// Info holds values injected with -ldflags "-X main.buildVersion=...".
type Info struct {
	Version string
	Date    string
	Commit  string
}

// New returns Info with empty values replaced by "N/A".
func New(version, date, commit string) Info {
	return Info{Version: orNA(version), Date: orNA(date), Commit: orNA(commit)}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// Log writes the build info at debug level. Stdout is left untouched.
func (i Info) Log(logger *zap.SugaredLogger) {
	logger.Debugw("build info",
		"version", i.Version,
		"date", i.Date,
		"commit", i.Commit,
	)
}
