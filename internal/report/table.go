package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/TeriyakiSecky/android-sdk/internal/model"
)

// WriteTable renders findings as a plain text table.
func WriteTable(w io.Writer, findings []model.Finding) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Issue", "Severity", "Location", "Message"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
	})
	for _, f := range findings {
		location := f.File
		if f.Line > 0 {
			location = fmt.Sprintf("%s:%d", f.File, f.Line)
		}
		table.Append([]string{f.IssueID, string(f.Severity), location, f.Message})
	}
	table.SetFooter([]string{"", "", "", fmt.Sprintf("%d findings", len(findings))})
	table.Render()
}
