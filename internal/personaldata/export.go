package personaldata

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Export formats.
const (
	FormatURLs     = "urls"
	FormatMarkdown = "markdown"
)

const notebookLMDir = "notebooklm"

var youtubeHrefRe = regexp.MustCompile(`href="([^"]+youtube[^"]+)"`)

// ExtractVideoURLs returns every href value mentioning youtube, in document order.
func ExtractVideoURLs(html string) []string {
	matches := youtubeHrefRe.FindAllStringSubmatch(html, -1)
	urls := make([]string, 0, len(matches))
	for _, m := range matches {
		urls = append(urls, m[1])
	}
	return urls
}

// Export writes a timestamped file into exports/notebooklm and returns its path.
// "urls" lists the video URLs found in the library HTML, one per line.
// "markdown" copies the consolidated knowledge base, generating it first if
// the file is missing (a stale file is not regenerated).
func (m *Manager) Export(format string) (string, error) {
	if format != FormatURLs && format != FormatMarkdown {
		return "", &FormatError{Format: format}
	}
	base, err := m.ExportsDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, notebookLMDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("ensure exports dir: %w", err)
	}
	stamp := m.now().UnixMilli()

	switch format {
	case FormatURLs:
		libraryPath, err := m.VideoLibraryPath()
		if err != nil {
			return "", err
		}
		content, err := os.ReadFile(libraryPath)
		if err != nil {
			return "", fmt.Errorf("read video library: %w", err)
		}
		urls := ExtractVideoURLs(string(content))
		out := filepath.Join(dir, fmt.Sprintf("all-videos-%d.txt", stamp))
		if err := os.WriteFile(out, []byte(strings.Join(urls, "\n")), 0o644); err != nil {
			return "", fmt.Errorf("write url export: %w", err)
		}
		return out, nil

	default:
		kbPath, err := m.ConsolidatedKBPath()
		if err != nil {
			return "", err
		}
		if _, err := os.Stat(kbPath); isNotExist(err) {
			if _, err := m.GenerateConsolidatedKB(); err != nil {
				return "", err
			}
		}
		out := filepath.Join(dir, fmt.Sprintf("consolidated-%d.md", stamp))
		if err := copyFile(kbPath, out); err != nil {
			return "", fmt.Errorf("copy knowledge base: %w", err)
		}
		return out, nil
	}
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
