package commands

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	odp "github.com/patent-dev/uspto-odp"
)

var petitionsCmd = &cobra.Command{
	Use:   "petitions",
	Short: "Search final petition decisions.",
}

var petitionSearch odp.PetitionSearchOptions

var petitionsSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Searches petition decisions.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.SearchPetitionDecisions(cmd.Context(), petitionSearch)
		if err != nil {
			return err
		}

		t := newTable(os.Stdout)
		t.AppendHeader(table.Row{"Record", "Application", "Decided", "Decision", "Tech center", "Title"})
		for p := range resp.All() {
			t.AppendRow(table.Row{
				text(p.PetitionDecisionRecordIdentifier),
				text(p.ApplicationNumberText),
				date(p.DecisionDate),
				text(p.DecisionTypeCodeDescriptionText),
				text(p.TechnologyCenter),
				text(p.InventionTitle),
			})
		}
		pageFooter(t, resp.Len(), resp.Count)
		t.Render()
		return nil
	},
}

func init() {
	f := petitionsSearchCmd.Flags()
	f.StringVarP(&petitionSearch.Query, "query", "q", "", "Raw query; overrides the field flags.")
	f.StringVar(&petitionSearch.ApplicationNumberQ, "application", "", "Match the application number.")
	f.StringVar(&petitionSearch.DecisionTypeQ, "decision", "", "Match the decision, e.g. GRANTED.")
	f.StringVar(&petitionSearch.TechnologyCenterQ, "tech-center", "", "Match the technology center.")
	f.StringVar(&petitionSearch.DecisionDateFromQ, "from", "", "Decided on or after (YYYY-MM-DD).")
	f.StringVar(&petitionSearch.DecisionDateToQ, "to", "", "Decided on or before (YYYY-MM-DD).")
	f.StringVar(&petitionSearch.Sort, "sort", "", "Sort expression.")
	f.IntVar(&petitionSearch.Offset, "offset", 0, "Number of decisions to skip.")
	f.IntVar(&petitionSearch.Limit, "limit", odp.DefaultLimit, "Decisions per page.")

	petitionsCmd.AddCommand(petitionsSearchCmd)
	rootCmd.AddCommand(petitionsCmd)
}
