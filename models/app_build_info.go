package models

import "strings"

// notAvailable is what the binaries print for build values that were not
// linked in.
const notAvailable = "N/A"

// AppBuildInfo holds the version, date and commit linked into a binary with
// -ldflags "-X main.buildVersion=...". Missing values and "N/A" are stored
// as empty strings.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: linked(version),
		date:    linked(date),
		commit:  linked(commit),
	}
}

func linked(value string) string {
	value = strings.TrimSpace(value)
	if value == notAvailable {
		return ""
	}
	return value
}

func (a AppBuildInfo) Version() string { return a.version }
func (a AppBuildInfo) Date() string    { return a.date }
func (a AppBuildInfo) Commit() string  { return a.commit }

// String renders "version (commit, date)", leaving out what is unknown.
func (a AppBuildInfo) String() string {
	version := a.version
	if version == "" {
		version = notAvailable
	}

	var extra []string
	if a.commit != "" {
		extra = append(extra, a.commit)
	}
	if a.date != "" {
		extra = append(extra, a.date)
	}
	if len(extra) == 0 {
		return version
	}
	return version + " (" + strings.Join(extra, ", ") + ")"
}
