// Package table holds the tabular model for weekly fantasy stats.
//
// A Header is normalized once from the raw column names found on the page, a
// Table binds extracted Records to that Header, and WeekTables keeps one Table
// per week in the order they were added so a season can be stacked into a
// single Table before it is written to disk.
package table
