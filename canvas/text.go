// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"fmt"

	"github.com/gogpu/drafter"
	"github.com/gogpu/drafter/tool"
)

// CommitText outlines s at the origin picked by the text tool and commits
// the outline as a filled curve. A glyph provider failure is logged and
// leaves the canvas untouched.
func (c *Canvas) CommitText(s string) error {
	defer c.batch()()
	if _, ok := c.tool.(tool.Text); !ok || !c.session.Placing || c.glyphs == nil {
		return c.skip("text", drafter.ErrNotApplicable)
	}
	p, err := c.glyphs.Outline(s, c.cfg.FontSize, c.session.Origin)
	if err != nil {
		c.logger().Warn("glyph outline failed", "text", s, "err", err)
		return fmt.Errorf("canvas: commit text: %w", err)
	}
	if p == nil || p.IsEmpty() {
		return c.skip("text", drafter.ErrEmptyPath)
	}
	c.commit(p, true, nil, tool.Name(c.tool))
	return nil
}
