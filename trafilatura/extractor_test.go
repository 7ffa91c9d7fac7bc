package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/docgrab"
	"github.com/fwojciec/docgrab/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements docgrab.Extractor at compile time.
var _ docgrab.Extractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title from meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Getting Started - My Docs</title>
<meta property="og:title" content="Getting Started Guide">
</head>
<body>
<nav>Navigation here</nav>
<main>
<h1>Getting Started</h1>
<p>This is the main content of the documentation page.</p>
</main>
<footer>Footer content</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		page, err := ext.Extract(html, "https://example.com/docs/start")

		require.NoError(t, err)
		assert.NotEmpty(t, page.Title)
		assert.NotEqual(t, "https://example.com/docs/start", page.Title)
	})

	t.Run("extracts main content without a selector", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/">Home</a><a href="/docs">Docs</a></nav>
<article>
<h1>Documentation</h1>
<p>This is important documentation content that should be extracted.</p>
</article>
<aside>Sidebar content</aside>
<footer>Copyright 2024</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		page, err := ext.Extract(html, "https://example.com/docs")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/docs", page.URL)
		assert.Contains(t, page.Body, "important documentation content")
	})

	t.Run("removes navigation boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav class="main-nav">
<ul>
<li><a href="/">Home</a></li>
<li><a href="/about">About</a></li>
<li><a href="/docs">Documentation</a></li>
</ul>
</nav>
<main>
<h1>Main Content</h1>
<p>This paragraph contains the actual content we want.</p>
</main>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		page, err := ext.Extract(html, "https://example.com/")

		require.NoError(t, err)
		assert.Contains(t, page.Body, "actual content we want")
		assert.NotContains(t, page.Body, "About")
	})

	t.Run("preserves code blocks as fenced text", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Code Example</title></head>
<body>
<article>
<h1>Code Examples</h1>
<p>Here is a code example:</p>
<pre><code class="language-go">package main

import "fmt"

func main() {
    fmt.Println("Hello, World!")
}
</code></pre>
<p>Run it with go run.</p>
</article>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		page, err := ext.Extract(html, "https://example.com/code")

		require.NoError(t, err)
		assert.Contains(t, page.Body, "fmt.Println(\"Hello, World!\")")
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("", "https://example.com/")

		require.Error(t, err)
		assert.Equal(t, docgrab.EINVALID, docgrab.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND when no content can be located", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html><html><head><title>Empty</title></head><body></body></html>`

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract(html, "https://example.com/empty")

		require.Error(t, err)
		assert.Equal(t, docgrab.ENOTFOUND, docgrab.ErrorCode(err))
	})

	t.Run("falls back to URL title for heading-less content", func(t *testing.T) {
		t.Parallel()

		html := `<html><head></head><body><article><p>Simple content without any heading or metadata title, long enough that extraction keeps it.</p></article></body></html>`

		ext := trafilatura.NewExtractor()
		page, err := ext.Extract(html, "https://example.com/simple")

		require.NoError(t, err)
		assert.NotEmpty(t, page.Title)
		assert.Contains(t, page.Body, "Simple content")
	})
}
