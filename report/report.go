package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ErrLengthMismatch indicates sizes and times of different lengths.
var ErrLengthMismatch = errors.New("report: sizes and times differ in length")

// Column headers.
const (
	headerSize = "Size"
	headerTime = "Time (μs)"
)

func checkAligned(method string, sizes []int, micros []int64) error {
	if len(sizes) != len(micros) {
		return fmt.Errorf("%s: %d sizes, %d times: %w", method, len(sizes), len(micros), ErrLengthMismatch)
	}

	return nil
}

// Title returns the header line naming the algorithm and data shape.
func Title(algorithm, distribution string) string {
	return fmt.Sprintf("--- Results for %s on %s data ---", algorithm, distribution)
}

// WriteText writes:
//
//	<blank line>
//	--- Results for <algorithm> on <distribution> data ---
//	Size	Time (μs)
//	<size>	<time>
//	...
//	<blank line>
func WriteText(w io.Writer, sizes []int, micros []int64, algorithm, distribution string) error {
	if err := checkAligned("WriteText", sizes, micros); err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(Title(algorithm, distribution))
	sb.WriteString("\n")
	sb.WriteString(headerSize + "\t" + headerTime + "\n")
	for i, size := range sizes {
		sb.WriteString(strconv.Itoa(size))
		sb.WriteString("\t")
		sb.WriteString(strconv.FormatInt(micros[i], 10))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())

	return err
}

// tableStyles holds the lipgloss styles of one WriteTable call.
type tableStyles struct {
	title, header, cell, sep lipgloss.Style
}

// newTableStyles binds the styles to a renderer for w, so the color profile
// is detected on w itself rather than on os.Stdout.
func newTableStyles(w io.Writer) tableStyles {
	r := lipgloss.NewRenderer(w)

	return tableStyles{
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A")),
		header: r.NewStyle().Bold(true).Padding(0, 1),
		cell:   r.NewStyle().Padding(0, 1).Align(lipgloss.Right),
		sep:    r.NewStyle().Foreground(lipgloss.Color("#2a3850")),
	}
}

// WriteTable renders the same data as WriteText as a padded two-column
// table. Styling follows the capabilities of w: a file, pipe or buffer gets
// plain text.
func WriteTable(w io.Writer, sizes []int, micros []int64, algorithm, distribution string) error {
	if err := checkAligned("WriteTable", sizes, micros); err != nil {
		return err
	}

	rows := make([][2]string, len(sizes))
	widths := [2]int{lipgloss.Width(headerSize), lipgloss.Width(headerTime)}
	for i, size := range sizes {
		rows[i] = [2]string{strconv.Itoa(size), strconv.FormatInt(micros[i], 10)}
		for c := range rows[i] {
			if cw := lipgloss.Width(rows[i][c]); cw > widths[c] {
				widths[c] = cw
			}
		}
	}
	// Padding(0,1) adds one cell on each side.
	for c := range widths {
		widths[c] += 2
	}

	st := newTableStyles(w)
	var sb strings.Builder
	sb.WriteString(st.title.Render(Title(algorithm, distribution)))
	sb.WriteString("\n")
	sb.WriteString(st.header.Width(widths[0]).Render(headerSize))
	sb.WriteString(st.sep.Render("|"))
	sb.WriteString(st.header.Width(widths[1]).Render(headerTime))
	sb.WriteString("\n")
	sb.WriteString(st.sep.Render(strings.Repeat("-", widths[0]+widths[1]+1)))
	sb.WriteString("\n")
	for _, row := range rows {
		sb.WriteString(st.cell.Width(widths[0]).Render(row[0]))
		sb.WriteString(st.sep.Render("|"))
		sb.WriteString(st.cell.Width(widths[1]).Render(row[1]))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())

	return err
}
