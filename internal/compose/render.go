// SPDX-License-Identifier: Apache-2.0

package compose

import (
	"bytes"

	"github.com/joomcode/errorx"
	"gopkg.in/yaml.v3"
)

var (
	ErrNamespace = errorx.NewNamespace("compose")
	RenderError  = ErrNamespace.NewType("render")
)

// Render serializes the document with two-space indentation. Given the same
// document it always produces the same bytes.
func Render(doc Document) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(doc); err != nil {
		return nil, RenderError.Wrap(err, "failed to encode compose document")
	}

	if err := enc.Close(); err != nil {
		return nil, RenderError.Wrap(err, "failed to finalize compose document")
	}

	return buf.Bytes(), nil
}
