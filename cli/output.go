package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/EricWal/hr-app/domain"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

// render prints data as JSON or YAML, or the given rows as a table.
func render(cmd *cobra.Command, data interface{}, header []string, rows [][]string) error {
	format, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case outputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case outputYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	case outputTable, "":
		table := tablewriter.NewWriter(out)
		table.SetHeader(header)
		table.SetAutoWrapText(false)
		table.SetBorder(false)
		table.AppendBulk(rows)
		table.Render()
		return nil
	}
	return fmt.Errorf("unsupported output format %q", format)
}

var requestHeader = []string{"ID", "TYPE", "DATE", "DURATION", "STATUS", "EMPLOYEE"}

func requestRows(requests ...*domain.Request) [][]string {
	rows := make([][]string, 0, len(requests))
	for _, r := range requests {
		duration := "-"
		if r.ShortAbsence != nil {
			duration = domain.FormatMinutes(r.ShortAbsence.DurationMinutes)
		}
		rows = append(rows, []string{
			strconv.FormatInt(r.ID, 10),
			r.Type,
			r.DisplayDate(),
			duration,
			string(r.Status),
			r.Employee.Name,
		})
	}
	return rows
}
