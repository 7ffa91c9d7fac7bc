package main

import (
	"fmt"
	"time"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL      string        `arg:"" help:"Root URL of the documentation site"`
	Output   string        `short:"o" default:"docs.txt" help:"Output file path"`
	Link     []string      `short:"l" help:"Crawl only this link, resolved against URL (repeatable)"`
	Sitemap  bool          `help:"Crawl the URLs listed in the site's sitemaps"`
	Selector string        `short:"s" default:"main" help:"CSS selector for the content region"`
	Auto     bool          `help:"Locate the content region automatically instead of using a selector"`
	MaxPages int           `short:"n" help:"Stop after this many extracted pages (0 = unlimited)"`
	Delay    time.Duration `default:"1s" help:"Pause between requests to the same host"`
	Timeout  time.Duration `default:"10s" help:"HTTP request timeout"`
	Verbose  bool          `short:"v" help:"Log every fetch"`
}

// validate checks flag combinations Kong cannot express.
func (c *CLI) validate() error {
	if c.Sitemap && len(c.Link) > 0 {
		return fmt.Errorf("--sitemap and --link are mutually exclusive")
	}
	if c.MaxPages < 0 {
		return fmt.Errorf("--max-pages must not be negative")
	}
	return nil
}
