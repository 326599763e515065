// Package output renders memod-cli results as a table, JSON or YAML.
//
// The table formatter reads struct fields by reflection. A field tagged
// `table:"wide"` only appears with --wide, and `table:"-"` hides it.
package output
