// Package diag carries diagnostics from the lexer and the analysis
// passes to the output layer. Diagnostics are value types collected into
// a Bag through the Reporter interface; fixes attached to a diagnostic
// are materialised text edits consumed by the fix engine.
package diag
