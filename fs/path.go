package fs

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/wikicopy"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// TitleToPath converts an article title to a file name with the given
// extension.
// Example: "Go (programming language)" → Go_(programming_language).md
func TitleToPath(title, ext string) (string, error) {
	name := norm.NFC.String(strings.TrimSpace(title))
	if name == "" {
		return "", wikicopy.Errorf(wikicopy.EINVALID, "article title required")
	}

	name = strings.ReplaceAll(name, " ", "_")
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		if r < 0x20 {
			return -1
		}
		return r
	}, name)
	name = strings.TrimLeft(name, ".")
	if name == "" {
		return "", wikicopy.Errorf(wikicopy.EINVALID, "article title %q has no usable file name", title)
	}

	return name + "." + strings.TrimPrefix(ext, "."), nil
}

// OutputPath returns where an article should be written. When out names an
// existing directory the file is placed inside it under a name derived from
// the title; otherwise out is used as is.
func OutputPath(out, title, ext string) (string, error) {
	info, err := os.Stat(out)
	if err != nil || !info.IsDir() {
		return out, nil
	}
	name, err := TitleToPath(title, ext)
	if err != nil {
		return "", err
	}
	return filepath.Join(out, name), nil
}

// frontmatter is the YAML header written ahead of an exported body.
type frontmatter struct {
	Source  string `yaml:"source"`
	Title   string `yaml:"title"`
	PageID  int    `yaml:"pageid,omitempty"`
	Fetched string `yaml:"fetched"`
}

// FormatArticle prefixes an exported body with YAML frontmatter describing
// where it came from. Placeholder ids are left out.
func FormatArticle(article *wikicopy.Article, baseURL, body string, fetched time.Time) (string, error) {
	fm := frontmatter{
		Source:  article.URL(baseURL),
		Title:   article.Ref.Title,
		Fetched: fetched.Format("2006-01-02"),
	}
	if article.Ref.HasAuthoritativeID() {
		fm.PageID = article.Ref.ID
	}

	header, err := yaml.Marshal(fm)
	if err != nil {
		return "", wikicopy.Errorf(wikicopy.EINTERNAL, "encode frontmatter: %v", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(body)
	return b.String(), nil
}
