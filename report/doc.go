// Package report renders mean-time series as size/time tables.
//
// Two renderers share one contract: sizes and times are aligned by
// position and must have equal length.
//
//   - WriteText  — plain tab-separated layout, stable for diffs and logs.
//   - WriteTable — lipgloss-styled table for interactive terminals.
package report
