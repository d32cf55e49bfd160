// Package parser turns a rendered dining-hall menu page into the
// hierarchical menu model.
//
// The source markup is a table layout where meal headers, station headers,
// and recipe rows appear as classed divs in document order, wrapped in
// arbitrarily nested table rows. The builder walks those divs with section
// and subsection cursors; per item, positional heuristics associate the
// allergen icons in its immediate row and the price carried by the nearest
// enclosing row with a price block.
package parser
