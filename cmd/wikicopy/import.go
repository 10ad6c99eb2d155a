package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/wikicopy"
	"github.com/fwojciec/wikicopy/fs"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	if strings.TrimSpace(c.Title) == "" && c.ID <= 0 {
		fmt.Fprintln(deps.Stderr, "error: an article title or --id is required")
		return wikicopy.Errorf(wikicopy.EINVALID, "article title or id required")
	}
	return c.export(deps, wikicopy.ArticleRef{Title: c.Title, ID: c.ID})
}

// export imports ref and delivers it to the configured sink.
func (f *ExportFlags) export(deps *Dependencies, ref wikicopy.ArticleRef) error {
	mode, err := wikicopy.ParseEmphasisMode(f.Mode)
	if err != nil {
		return err
	}

	article, err := deps.Importer.Import(deps.Ctx, ref, mode)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikicopy.ErrorMessage(err))
		return err
	}

	body, err := f.render(deps, article)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikicopy.ErrorMessage(err))
		return err
	}
	if f.Frontmatter {
		now := time.Now
		if deps.Now != nil {
			now = deps.Now
		}
		body, err = fs.FormatArticle(article, deps.BaseURL, body, now())
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wikicopy.ErrorMessage(err))
			return err
		}
	}

	if f.Clipboard {
		if deps.Clipboard == nil {
			err := wikicopy.Errorf(wikicopy.EUNAVAILABLE, "clipboard not available")
			fmt.Fprintf(deps.Stderr, "error: %s\n", wikicopy.ErrorMessage(err))
			return err
		}
		if err := deps.Clipboard.Write(deps.Ctx, body); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wikicopy.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "Copied %q to clipboard as %s (source: %s)\n", article.Ref.Title, f.Format, article.Source)
		return nil
	}

	if f.Out == "" {
		return (&StreamSink{W: deps.Stdout}).Write(deps.Ctx, body)
	}

	path, err := fs.OutputPath(f.Out, article.Ref.Title, f.extension())
	if err != nil {
		return err
	}
	if err := fs.NewFileSink(path).Write(deps.Ctx, body); err != nil {
		fmt.Fprintf(deps.Stderr, "error: writing %s: %v\n", path, err)
		return err
	}
	fmt.Fprintf(deps.Stderr, "Saved %q to %s (source: %s)\n", article.Ref.Title, path, article.Source)
	return nil
}

func (f *ExportFlags) render(deps *Dependencies, article *wikicopy.Article) (string, error) {
	switch f.Format {
	case "text":
		return deps.Text.PlainText(article.HTML)
	case "markdown":
		return deps.Markdown.Convert(article.HTML)
	default:
		return article.HTML, nil
	}
}

func (f *ExportFlags) extension() string {
	switch f.Format {
	case "text":
		return "txt"
	case "markdown":
		return "md"
	default:
		return "html"
	}
}
