// SPDX-License-Identifier: Apache-2.0

package os

import "github.com/joomcode/errorx"

var (
	ErrNamespace         = errorx.NewNamespace("os")
	ErrSystemdConnection = ErrNamespace.NewType("systemd_connection")
	ErrSystemdOperation  = ErrNamespace.NewType("systemd_operation")
)
