// Package scraper fetches weekly fantasy stats pages from footballdb.com and
// turns the first stats table on each page into a normalized week table.
//
// Every data cell is classified into one of four shapes (empty, team marker,
// name-like, literal) and each shape emits a fixed number of fields, so a row
// of cells becomes one record aligned with the normalized header. The text
// rules are tuned to footballdb's markup: team cells carry the player's team
// in bold next to an "@" game marker, and player cells end with a one
// character suffix after the name.
package scraper
