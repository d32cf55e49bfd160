// Package menu provides the data model for scraped dining-hall menus.
//
// The menu package defines the hierarchical menu types (item, venue menu,
// per-date result), the text and date normalization rules shared across the
// scraper, and structural equality used by the schedule synchronizer to
// decide whether a stored snapshot needs to be replaced.
package menu
