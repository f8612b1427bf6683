package wire

// ParsePath decomposes the cursor's remaining input into directory, base,
// and extension, parameterized by the directory and extension separator
// bytes. The whole input is consumed.
//
// The split is lookahead-driven: a component is folded into the directory
// only if another directory separator follows it, and a piece is folded
// into the base only if another extension separator follows it. The last
// extension-separated piece alone becomes the extension, so "a.tar.gz"
// splits into base "a.tar" and extension "gz".
//
// The grammar accepts any input, including an empty one; the error return
// is always nil and kept for signature uniformity.
func ParsePath(c *Cursor, dirSep, extSep byte) (*Path, error) {
	p := &Path{DirectorySeparator: dirSep, ExtensionSeparator: extSep}

	// Directory: repeat (optional separator, component, lookahead
	// separator); an iteration that finds no following separator is
	// rolled back.
	dirStart := c.pos
	for {
		save := c.pos
		if b, ok := c.peek(); ok && b == dirSep {
			c.pos++
		}
		c.takeUntilByte(dirSep)
		if b, ok := c.peek(); !ok || b != dirSep {
			c.pos = save
			break
		}
	}
	p.Directory = Span{src: c.src, start: dirStart, end: c.pos}

	// A single trailing separator is consumed but belongs to neither the
	// directory nor the base.
	if b, ok := c.peek(); ok && b == dirSep {
		c.pos++
	}

	// Base: leading piece, then further pieces only while yet another
	// extension separator follows them.
	baseStart := c.pos
	c.takeUntilByte(extSep)
	for {
		if b, ok := c.peek(); !ok || b != extSep {
			break
		}
		save := c.pos
		c.pos++
		c.takeUntilByte(extSep)
		if b, ok := c.peek(); !ok || b != extSep {
			c.pos = save
			break
		}
	}
	p.Base = Span{src: c.src, start: baseStart, end: c.pos}

	// Extension: the remainder after a final separator.
	if b, ok := c.peek(); ok && b == extSep {
		c.pos++
		p.Extension = Span{src: c.src, start: c.pos, end: c.end}
		c.pos = c.end
	}

	if p.Extension.IsEmpty() {
		p.File = p.Base
	} else {
		p.File = Span{src: c.src, start: p.Base.start, end: p.Extension.end}
	}
	return p, nil
}
