// Package share hands reports and photos to the outside world: an export
// directory standing in for the native share sheet, with the clipboard as
// fallback.
package share

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/workstats/internal/domain"
	"github.com/atotto/clipboard"
)

// ErrUnavailable indicates the share target cannot be used here.
var ErrUnavailable = errors.New("share target unavailable")

// Method tells how content left the app.
type Method string

const (
	MethodExport    Method = "export"
	MethodClipboard Method = "clipboard"
)

// Content is what gets shared.
type Content struct {
	Title string
	Text  string
	Files domain.AttachmentSet
}

// Outcome describes a completed share.
type Outcome struct {
	Method   Method
	Location string
}

// Sharer delivers content.
type Sharer interface {
	Share(ctx context.Context, c Content) (Outcome, error)
}

// Copier places text on the clipboard.
type Copier interface {
	Copy(text string) error
}

// ClipboardCopier uses the system clipboard.
type ClipboardCopier struct {
	write func(string) error
}

// NewClipboardCopier creates a Copier on the system clipboard.
func NewClipboardCopier() *ClipboardCopier {
	return &ClipboardCopier{write: clipboard.WriteAll}
}

func (c *ClipboardCopier) Copy(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard: %w", ErrUnavailable)
	}
	if err := c.write(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}

// DirSharer writes each share into a fresh timestamped directory.
type DirSharer struct {
	root string
	now  func() time.Time
}

// NewDirSharer creates a DirSharer exporting under root.
func NewDirSharer(root string, now func() time.Time) *DirSharer {
	if now == nil {
		now = time.Now
	}
	return &DirSharer{root: root, now: now}
}

func (s *DirSharer) Share(ctx context.Context, c Content) (Outcome, error) {
	if s.root == "" {
		return Outcome{}, fmt.Errorf("export directory: %w", ErrUnavailable)
	}
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	dir := filepath.Join(s.root, s.now().Format("20060102-150405.000"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Outcome{}, fmt.Errorf("creating export directory: %w", err)
	}
	if c.Text != "" {
		if err := os.WriteFile(filepath.Join(dir, "report.txt"), []byte(c.Text+"\n"), 0o644); err != nil {
			return Outcome{}, fmt.Errorf("writing report: %w", err)
		}
	}
	for i, f := range c.Files {
		name := fmt.Sprintf("photo_%d%s", i+1, extFor(f.MIME))
		if err := os.WriteFile(filepath.Join(dir, name), f.Data, 0o644); err != nil {
			return Outcome{}, fmt.Errorf("writing %s: %w", name, err)
		}
	}
	return Outcome{Method: MethodExport, Location: dir}, nil
}

func extFor(mime string) string {
	switch mime {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	}
	return ".jpg"
}

// FallbackSharer tries the primary sharer and copies the text to the
// clipboard when it fails. Files are not copied.
type FallbackSharer struct {
	Primary Sharer
	Copier  Copier
}

func (f FallbackSharer) Share(ctx context.Context, c Content) (Outcome, error) {
	var primaryErr error
	if f.Primary != nil {
		out, err := f.Primary.Share(ctx, c)
		if err == nil {
			return out, nil
		}
		primaryErr = err
	}
	if f.Copier == nil {
		return Outcome{}, errors.Join(primaryErr, ErrUnavailable)
	}
	if err := f.Copier.Copy(c.Text); err != nil {
		return Outcome{}, errors.Join(primaryErr, err)
	}
	return Outcome{Method: MethodClipboard}, nil
}
