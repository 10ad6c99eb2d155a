package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/fwojciec/wikicopy"
	"github.com/fwojciec/wikicopy/search"
)

// Run executes the browse command. Each input line replaces the query;
// ":N" imports candidate N from the results currently shown.
func (c *BrowseCmd) Run(deps *Dependencies) error {
	var mu sync.Mutex
	show := func(rs search.ResultSet) {
		mu.Lock()
		defer mu.Unlock()
		switch {
		case len(rs.Candidates) > 0:
			fmt.Fprintf(deps.Stdout, "Results for %q:\n%s\n", rs.Query, wikicopy.FormatCandidates(deps.BaseURL, rs.Candidates))
		case len([]rune(strings.TrimSpace(rs.Query))) >= wikicopy.MinQueryLength:
			fmt.Fprintf(deps.Stdout, "No articles found for %q.\n", rs.Query)
		}
	}

	session := search.NewSession(deps.Ctx, deps.Resolver,
		search.WithDebounce(c.Debounce),
		search.WithOnResults(show),
	)
	defer session.Close()

	fmt.Fprintln(deps.Stderr, "Type a query and press enter. Enter :N to import result N.")

	scanner := bufio.NewScanner(deps.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if n, ok := selection(line); ok {
			current := session.Current()
			if n < 1 || n > len(current.Candidates) {
				fmt.Fprintf(deps.Stderr, "No result %d.\n", n)
				continue
			}
			session.Close()
			return c.export(deps, current.Candidates[n-1].Ref())
		}
		session.Input(line)
	}
	return scanner.Err()
}

// selection parses a ":N" line.
func selection(line string) (int, bool) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), ":")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		return 0, false
	}
	return n, true
}
