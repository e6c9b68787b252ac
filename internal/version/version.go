// SPDX-License-Identifier: Apache-2.0

package version

// Set at build time via -ldflags.
var (
	number = "0.1.0"
	commit = "unknown"
)

// Number returns the release version.
func Number() string {
	return number
}

// Commit returns the git commit the binary was built from.
func Commit() string {
	return commit
}
