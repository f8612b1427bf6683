package wire

import "testing"

func TestParsePath_DirBaseExtension(t *testing.T) {
	c := NewCursor([]byte("/a/b/c.tar.gz"))
	p, err := ParsePath(c, '/', '.')
	if err != nil {
		t.Fatalf("ParsePath() error = %v", err)
	}

	// Only the final dot-delimited piece is the extension, and the
	// directory excludes the separator before the file name.
	if got := p.Directory.String(); got != "/a/b" {
		t.Errorf("Directory = %q, want /a/b", got)
	}
	if got := p.Base.String(); got != "c.tar" {
		t.Errorf("Base = %q, want c.tar", got)
	}
	if got := p.Extension.String(); got != "gz" {
		t.Errorf("Extension = %q, want gz", got)
	}
	if got := p.File.String(); got != "c.tar.gz" {
		t.Errorf("File = %q, want c.tar.gz", got)
	}
	if !c.IsEmpty() {
		t.Errorf("cursor not at end, Rest() = %q", c.Rest())
	}
}

func TestParsePath_FileIsContiguous(t *testing.T) {
	c := NewCursor([]byte("/d/base.ext"))
	p, err := ParsePath(c, '/', '.')
	if err != nil {
		t.Fatalf("ParsePath() error = %v", err)
	}
	if p.File.Start() != p.Base.Start() || p.File.End() != p.Extension.End() {
		t.Errorf("File = [%d,%d), want [%d,%d)",
			p.File.Start(), p.File.End(), p.Base.Start(), p.Extension.End())
	}
}

func TestParsePath_NoExtension(t *testing.T) {
	c := NewCursor([]byte("/a/b/name"))
	p, err := ParsePath(c, '/', '.')
	if err != nil {
		t.Fatalf("ParsePath() error = %v", err)
	}
	if got := p.Base.String(); got != "name" {
		t.Errorf("Base = %q, want name", got)
	}
	if !p.Extension.IsEmpty() {
		t.Errorf("Extension = %q, want empty", p.Extension)
	}
	// File == Base when there is no extension.
	if p.File.Start() != p.Base.Start() || p.File.End() != p.Base.End() {
		t.Errorf("File = [%d,%d), want Base range [%d,%d)",
			p.File.Start(), p.File.End(), p.Base.Start(), p.Base.End())
	}
}

func TestParsePath_BareName(t *testing.T) {
	c := NewCursor([]byte("name"))
	p, err := ParsePath(c, '/', '.')
	if err != nil {
		t.Fatalf("ParsePath() error = %v", err)
	}
	if !p.Directory.IsEmpty() {
		t.Errorf("Directory = %q, want empty", p.Directory)
	}
	if got := p.File.String(); got != "name" {
		t.Errorf("File = %q, want name", got)
	}
}

func TestParsePath_TrailingSeparator(t *testing.T) {
	c := NewCursor([]byte("/a/"))
	p, err := ParsePath(c, '/', '.')
	if err != nil {
		t.Fatalf("ParsePath() error = %v", err)
	}
	if got := p.Directory.String(); got != "/a" {
		t.Errorf("Directory = %q, want /a", got)
	}
	if !p.Base.IsEmpty() || !p.File.IsEmpty() {
		t.Errorf("Base/File = %q/%q, want empty", p.Base, p.File)
	}
}

func TestParsePath_HiddenFile(t *testing.T) {
	// ".hidden" has an empty base; the file still spans the whole name.
	c := NewCursor([]byte(".hidden"))
	p, err := ParsePath(c, '/', '.')
	if err != nil {
		t.Fatalf("ParsePath() error = %v", err)
	}
	if !p.Base.IsEmpty() {
		t.Errorf("Base = %q, want empty", p.Base)
	}
	if got := p.Extension.String(); got != "hidden" {
		t.Errorf("Extension = %q, want hidden", got)
	}
	if got := p.File.String(); got != ".hidden" {
		t.Errorf("File = %q, want .hidden", got)
	}
}

func TestParsePath_TrailingExtensionSeparator(t *testing.T) {
	// "a.tar." ends in a separator with nothing after it: the extension is
	// empty, so the file collapses to the base.
	c := NewCursor([]byte("a.tar."))
	p, err := ParsePath(c, '/', '.')
	if err != nil {
		t.Fatalf("ParsePath() error = %v", err)
	}
	if got := p.Base.String(); got != "a.tar" {
		t.Errorf("Base = %q, want a.tar", got)
	}
	if !p.Extension.IsEmpty() {
		t.Errorf("Extension = %q, want empty", p.Extension)
	}
	if got := p.File.String(); got != "a.tar" {
		t.Errorf("File = %q, want a.tar", got)
	}
}

func TestParsePath_DoubledSeparators(t *testing.T) {
	c := NewCursor([]byte("a..b"))
	p, err := ParsePath(c, '/', '.')
	if err != nil {
		t.Fatalf("ParsePath() error = %v", err)
	}
	if got := p.Base.String(); got != "a." {
		t.Errorf("Base = %q, want a.", got)
	}
	if got := p.Extension.String(); got != "b" {
		t.Errorf("Extension = %q, want b", got)
	}
}

func TestParsePath_CustomSeparators(t *testing.T) {
	c := NewCursor([]byte(`C:\dir\f.txt`))
	p, err := ParsePath(c, '\\', '.')
	if err != nil {
		t.Fatalf("ParsePath() error = %v", err)
	}
	if got := p.Directory.String(); got != `C:\dir` {
		t.Errorf("Directory = %q, want C:\\dir", got)
	}
	if got := p.Base.String(); got != "f" {
		t.Errorf("Base = %q, want f", got)
	}
	if got := p.Extension.String(); got != "txt" {
		t.Errorf("Extension = %q, want txt", got)
	}
	if p.DirectorySeparator != '\\' || p.ExtensionSeparator != '.' {
		t.Errorf("separators = %q/%q, want \\ and .", p.DirectorySeparator, p.ExtensionSeparator)
	}
}

func TestParsePath_Empty(t *testing.T) {
	c := NewCursor(nil)
	p, err := ParsePath(c, '/', '.')
	if err != nil {
		t.Fatalf("ParsePath() error = %v", err)
	}
	if !p.Directory.IsEmpty() || !p.File.IsEmpty() || !p.Base.IsEmpty() || !p.Extension.IsEmpty() {
		t.Errorf("expected all fields empty, got %s", p)
	}
}
