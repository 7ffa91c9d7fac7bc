package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// preserved is the per-page placeholder map: index i in each list
// corresponds to the token [CODE_BLOCK_<i+1>] or [TABLE_<i+1>] left in the
// region. It lives for a single page extraction and is discarded after
// restore.
type preserved struct {
	codes  []string
	tables []string
}

// preserveBlocks replaces every code-bearing element and every table in
// the region with a placeholder token and records the rendered block text.
//
// Nesting order is deterministic: tables are extracted first, so inline
// code in cells is still intact when the table is rendered; the code pass
// then takes the outermost code-bearing element (a <pre><code> pair yields
// one block). Nested tables collapse into the outermost table's rendering.
func preserveBlocks(region *goquery.Selection) *preserved {
	p := &preserved{}

	region.Find("table").Each(func(_ int, table *goquery.Selection) {
		if table.Parents().Is("table") {
			return
		}
		p.tables = append(p.tables, renderTable(table))
		table.ReplaceWithHtml(fmt.Sprintf("[TABLE_%d]", len(p.tables)))
	})

	region.Find("pre, code").Each(func(_ int, el *goquery.Selection) {
		if el.Parents().Is("pre, code") {
			return
		}
		p.codes = append(p.codes, renderCode(el))
		el.ReplaceWithHtml(fmt.Sprintf("[CODE_BLOCK_%d]", len(p.codes)))
	})

	return p
}

// restore re-inlines the preserved blocks after normalization: code inside
// a fenced block, tables as plain text, each padded with blank lines.
func (p *preserved) restore(text string) string {
	for i, code := range p.codes {
		token := fmt.Sprintf("[CODE_BLOCK_%d]", i+1)
		text = strings.Replace(text, token, "\n```\n"+code+"\n```\n", 1)
	}
	for i, table := range p.tables {
		token := fmt.Sprintf("[TABLE_%d]", i+1)
		text = strings.Replace(text, token, "\n"+table+"\n", 1)
	}
	return text
}

// renderCode returns the literal rendered text of a code-bearing element
// with each line right-trimmed and surrounding whitespace stripped.
// Indentation within the block is preserved.
func renderCode(el *goquery.Selection) string {
	lines := strings.Split(el.Text(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// renderTable flattens a table to pipe-delimited rows: the header cells
// joined with " | " followed by a rule line, then each data row the same
// way. A data row that exactly duplicates the header line is skipped,
// since header cells are scanned again as part of their row.
func renderTable(table *goquery.Selection) string {
	var b strings.Builder

	headers := table.Find("th")
	var headerLine string
	if headers.Length() > 0 {
		cells := make([]string, 0, headers.Length())
		headers.Each(func(_ int, th *goquery.Selection) {
			cells = append(cells, cellText(th))
		})
		headerLine = strings.Join(cells, " | ")
		b.WriteString(headerLine)
		b.WriteString("\n")
		b.WriteString(strings.Repeat("-", headers.Length()*20))
		b.WriteString("\n")
	}

	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		tds := tr.Find("td, th")
		if tds.Length() == 0 {
			return
		}
		cells := make([]string, 0, tds.Length())
		tds.Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, cellText(td))
		})
		row := strings.Join(cells, " | ")
		if headers.Length() == 0 || row != headerLine {
			b.WriteString(row)
			b.WriteString("\n")
		}
	})

	return b.String()
}

// cellText renders one cell. A cell containing inline code renders as the
// code's text wrapped in backticks rather than the cell's raw text.
func cellText(cell *goquery.Selection) string {
	if code := cell.Find("code").First(); code.Length() > 0 {
		return "`" + strings.TrimSpace(code.Text()) + "`"
	}
	return strings.TrimSpace(cell.Text())
}
