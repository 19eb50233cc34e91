package commands

import (
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	odp "github.com/patent-dev/uspto-odp"
)

var (
	statusOpts   odp.StatusCodeOptions
	statusFilter string
)

var statusCodesCmd = &cobra.Command{
	Use:   "status-codes",
	Short: "Lists application status codes.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.GetStatusCodes(cmd.Context(), statusOpts)
		if err != nil {
			return err
		}
		codes := resp.Items
		if statusFilter != "" {
			codes = odp.SearchStatusDescriptions(codes, statusFilter)
		}

		t := newTable(os.Stdout)
		t.AppendHeader(table.Row{"Code", "Description"})
		for c := range codes.All() {
			code := "-"
			if c.Code != nil {
				code = strconv.Itoa(*c.Code)
			}
			t.AppendRow(table.Row{code, text(c.Description)})
		}
		pageFooter(t, codes.Len(), resp.Count)
		t.Render()
		return nil
	},
}

func init() {
	f := statusCodesCmd.Flags()
	f.StringVarP(&statusOpts.Query, "query", "q", "", "Server-side query.")
	f.StringVar(&statusFilter, "grep", "", "Keep codes whose description contains this text.")
	f.IntVar(&statusOpts.Offset, "offset", 0, "Number of codes to skip.")
	f.IntVar(&statusOpts.Limit, "limit", 250, "Codes per page.")

	rootCmd.AddCommand(statusCodesCmd)
}
