package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/wikicopy"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	query := strings.Join(c.Query, " ")
	if c.Limit < 1 || c.Limit > wikicopy.MaxCandidates {
		return wikicopy.Errorf(wikicopy.EINVALID, "--limit must be between 1 and %d", wikicopy.MaxCandidates)
	}
	deps.Resolver.Limit = c.Limit

	candidates := deps.Resolver.Resolve(deps.Ctx, query)
	if len(candidates) == 0 {
		fmt.Fprintf(deps.Stdout, "No articles found for %q.\n", query)
		return nil
	}

	fmt.Fprintln(deps.Stdout, wikicopy.FormatCandidates(deps.BaseURL, candidates))
	return nil
}
