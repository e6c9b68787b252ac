// SPDX-License-Identifier: Apache-2.0

package software

import "github.com/joomcode/errorx"

var (
	ErrNamespace      = errorx.NewNamespace("software")
	InstallationError = ErrNamespace.NewType("installation")

	pkgNameProperty = errorx.RegisterProperty("package")
)

// NewInstallationError wraps err with the package name it relates to.
// A nil err still produces an error describing the failed operation.
func NewInstallationError(err error, pkgName string, msg string) error {
	if msg == "" {
		msg = "package operation failed"
	}

	if err == nil {
		return InstallationError.New("%s: %s", pkgName, msg).
			WithProperty(pkgNameProperty, pkgName)
	}

	return InstallationError.Wrap(err, "%s: %s", pkgName, msg).
		WithProperty(pkgNameProperty, pkgName)
}
