// ABOUTME: Media picker boundary for attaching an image or video to a workout.
// ABOUTME: FilePicker resolves a local path into a file:// URI.
package media

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Request describes what the caller wants picked.
type Request struct {
	// Path is the candidate the user supplied. Empty means the user cancelled.
	Path string
}

// Picker returns a media URI, or ok=false when the user cancelled.
type Picker interface {
	Pick(ctx context.Context, req Request) (uri string, ok bool, err error)
}

// FilePicker picks media from the local filesystem.
type FilePicker struct{}

var _ Picker = FilePicker{}

// Pick resolves req.Path to an absolute file:// URI. The path must name an
// existing regular file.
func (FilePicker) Pick(ctx context.Context, req Request) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	path := strings.TrimSpace(req.Path)
	if path == "" {
		return "", false, nil
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, fmt.Errorf("resolve home dir: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false, fmt.Errorf("resolve media path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", false, fmt.Errorf("media file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return "", false, fmt.Errorf("media file %s is not a regular file", abs)
	}

	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String(), true, nil
}

// IsRemote reports whether s is an http or https URL, which callers accept
// as-is without picking.
func IsRemote(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Resolve returns a media URI for the user-supplied value: remote URLs and
// existing URIs pass through, anything else goes through picker.
func Resolve(ctx context.Context, picker Picker, value string) (string, bool, error) {
	value = strings.TrimSpace(value)
	if IsRemote(value) || strings.HasPrefix(value, "file://") {
		return value, true, nil
	}
	return picker.Pick(ctx, Request{Path: value})
}
