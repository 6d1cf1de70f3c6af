// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

const unknownBuildValue = "N/A"

// AppBuildInfo carries immutable build-time metadata embedded into the
// binary through linker flags and shown by the version command.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Empty values are reported as
// "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orUnknown(buildVersion),
		buildDate:    orUnknown(buildDate),
		buildCommit:  orUnknown(buildCommit),
	}
}

// BuildVersion returns the semantic version string of the build.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the source-control commit hash used for the build.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// Explain breaks the semantic version into its parts, for example
// "Major 1 Sub 4 Bugfix 2". Versions that are not of the form x.y.z are
// returned unchanged.
func (a AppBuildInfo) Explain() string {
	parts := strings.Split(strings.TrimPrefix(a.buildVersion, "v"), ".")
	if len(parts) != 3 {
		return a.buildVersion
	}
	return fmt.Sprintf("Major %s Sub %s Bugfix %s", parts[0], parts[1], parts[2])
}

func orUnknown(s string) string {
	if s == "" {
		return unknownBuildValue
	}
	return s
}

// AppInfo is what the version command prints.
type AppInfo struct {
	Build    AppBuildInfo
	Scheme   string
	VaultDir string
}
