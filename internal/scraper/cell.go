package scraper

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/ffstats/internal/table"
)

const (
	LocationHome = "home"
	LocationAway = "away"
)

// CellKind is the shape of a data cell.
type CellKind int

const (
	// CellEmpty has no child nodes and emits nothing.
	CellEmpty CellKind = iota
	// CellTeamMarker has the player's team in bold and emits team, opponent
	// and location.
	CellTeamMarker
	// CellNameLike ends in a space separated token and emits the player name.
	CellNameLike
	// CellLiteral emits its text as is.
	CellLiteral
)

func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellTeamMarker:
		return "team"
	case CellNameLike:
		return "name"
	case CellLiteral:
		return "literal"
	}
	return "unknown"
}

var (
	gamePattern = regexp.MustCompile(`^(.+)@(.+)$`)
	namePattern = regexp.MustCompile(`^(.+) (.+)`)
)

// Cell is a classified table cell. Text has non-breaking spaces replaced and
// periods removed; Bold is the raw text of the first <b> inside the cell.
type Cell struct {
	Kind CellKind
	Text string
	Bold string
}

// ExtractOptions tunes how cells are turned into fields.
type ExtractOptions struct {
	// CleanOpponent drops the "@" prefix from away opponents.
	CleanOpponent bool
}

// ClassifyCell inspects a <td> selection. Checks run in order and the first
// match wins: no child nodes, a bold fragment, a name-like text, anything else.
func ClassifyCell(td *goquery.Selection) Cell {
	if td.Contents().Length() == 0 {
		return Cell{Kind: CellEmpty}
	}

	text := cleanText(td.Text())
	if b := td.Find("b").First(); b.Length() > 0 {
		return Cell{Kind: CellTeamMarker, Text: text, Bold: b.Text()}
	}
	if namePattern.MatchString(text) {
		return Cell{Kind: CellNameLike, Text: text}
	}
	return Cell{Kind: CellLiteral, Text: text}
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.ReplaceAll(s, ".", "")
}

// Fields returns the output fields for c.
func (c Cell) Fields(opts ExtractOptions) ([]string, error) {
	switch c.Kind {
	case CellEmpty:
		return nil, nil
	case CellTeamMarker:
		return c.gameFields(opts)
	case CellNameLike:
		m := namePattern.FindStringSubmatch(c.Text)
		if m == nil {
			return nil, &UnrecognizedCellError{Kind: c.Kind, Text: c.Text}
		}
		return []string{trimLastRune(m[1])}, nil
	}
	return []string{c.Text}, nil
}

// gameFields splits "TEAM@TEAM" around the bold team. When the text starts
// with the bold team the player is at home; otherwise the opponent keeps the
// "@" marker as it appears on the site.
func (c Cell) gameFields(opts ExtractOptions) ([]string, error) {
	m := gamePattern.FindStringSubmatch(c.Text)
	if m == nil {
		return nil, &UnrecognizedCellError{Kind: c.Kind, Text: c.Text}
	}

	if strings.HasPrefix(c.Text, c.Bold) {
		return []string{c.Bold, m[2], LocationHome}, nil
	}

	opponent := "@" + m[1]
	if opts.CleanOpponent {
		opponent = m[1]
	}
	return []string{c.Bold, opponent, LocationAway}, nil
}

func trimLastRune(s string) string {
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}

// ExtractRow flattens the fields of every cell into one record and appends
// the week.
func ExtractRow(cells []Cell, week int, opts ExtractOptions) (table.Record, error) {
	row := make(table.Record, 0, len(cells)+3)
	for _, c := range cells {
		fields, err := c.Fields(opts)
		if err != nil {
			return nil, err
		}
		row = append(row, fields...)
	}
	return append(row, strconv.Itoa(week)), nil
}
