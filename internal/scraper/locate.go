package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cockroachdb/errors"
)

// DefaultHeaderRow is the index of the column-name row. Row 0 on footballdb
// is a group header (Passing, Rushing, Receiving).
const DefaultHeaderRow = 1

// Located is the raw content of a stats table.
type Located struct {
	Header []string
	Rows   [][]Cell
}

// LocateTable finds the first table in doc, splits the text of row headerRow
// into column names and classifies the <td> cells of every row after it.
// Rows without any <td> are ignored.
func LocateTable(doc *goquery.Document, headerRow int) (*Located, error) {
	tbl := doc.Find("table").First()
	if tbl.Length() == 0 {
		return nil, ErrNoTable
	}

	trs := tbl.Find("tr")
	if headerRow < 0 || trs.Length() <= headerRow {
		return nil, errors.Wrapf(ErrNoHeaderRow, "want row %d, table has %d rows", headerRow, trs.Length())
	}

	loc := &Located{Header: splitHeader(trs.Eq(headerRow).Text())}

	trs.Slice(headerRow+1, goquery.ToEnd).Each(func(_ int, tr *goquery.Selection) {
		tds := tr.Find("td")
		if tds.Length() == 0 {
			return
		}
		cells := make([]Cell, 0, tds.Length())
		tds.Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, ClassifyCell(td))
		})
		loc.Rows = append(loc.Rows, cells)
	})

	return loc, nil
}

// splitHeader splits the header row text on newlines, one column per line.
func splitHeader(text string) []string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	cols := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cols = append(cols, line)
	}
	return cols
}
