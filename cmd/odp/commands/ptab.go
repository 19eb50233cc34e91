package commands

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	odp "github.com/patent-dev/uspto-odp"
)

var ptabCmd = &cobra.Command{
	Use:   "ptab",
	Short: "Search Patent Trial and Appeal Board trials and decisions.",
}

var (
	ptabTrialSearch        odp.PTABProceedingSearchOptions
	ptabDecisionSearch     odp.PTABDecisionSearchOptions
	ptabInterferenceSearch odp.PTABInterferenceSearchOptions
)

var ptabTrialsCmd = &cobra.Command{
	Use:   "trials",
	Short: "Searches IPR, PGR, CBM and derivation proceedings.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.SearchPTABTrialProceedings(cmd.Context(), ptabTrialSearch)
		if err != nil {
			return err
		}

		t := newTable(os.Stdout)
		t.AppendHeader(table.Row{"Trial", "Type", "Status", "Filed", "Patent owner", "Petitioner"})
		for p := range resp.All() {
			row := table.Row{text(p.TrialNumber), "", "", "", "", ""}
			if m := p.TrialMetaData; m != nil {
				row[1], row[2], row[3] = text(m.TrialTypeCode), text(m.TrialStatusCategory), date(m.PetitionFilingDate)
			}
			if o := p.PatentOwnerData; o != nil {
				row[4] = text(o.PatentOwnerName)
			}
			if r := p.RegularPetitionerData; r != nil {
				row[5] = text(r.RealPartyInInterestName)
			}
			t.AppendRow(row)
		}
		pageFooter(t, resp.Len(), resp.Count)
		t.Render()
		return nil
	},
}

var ptabDecisionsCmd = &cobra.Command{
	Use:   "decisions",
	Short: "Searches trial decisions.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.SearchPTABTrialDecisions(cmd.Context(), ptabDecisionSearch)
		if err != nil {
			return err
		}

		t := newTable(os.Stdout)
		t.AppendHeader(table.Row{"Trial", "Issued", "Decision", "Outcome", "Document"})
		for d := range resp.All() {
			row := table.Row{text(d.TrialNumber), "", "", "", ""}
			if dd := d.DecisionData; dd != nil {
				row[1], row[2], row[3] = date(dd.DecisionIssueDate), text(dd.DecisionTypeCategory), text(dd.TrialOutcomeCategory)
			}
			if doc := d.DocumentData; doc != nil {
				row[4] = text(doc.DocumentName)
			}
			t.AppendRow(row)
		}
		pageFooter(t, resp.Len(), resp.Count)
		t.Render()
		return nil
	},
}

var ptabInterferencesCmd = &cobra.Command{
	Use:   "interferences",
	Short: "Searches interference decisions.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.SearchPTABInterferenceDecisions(cmd.Context(), ptabInterferenceSearch)
		if err != nil {
			return err
		}

		t := newTable(os.Stdout)
		t.AppendHeader(table.Row{"Interference", "Style", "Issued", "Outcome"})
		for d := range resp.All() {
			row := table.Row{text(d.InterferenceNumber), "", "", ""}
			if m := d.InterferenceMetaData; m != nil {
				row[1] = text(m.InterferenceStyleName)
			}
			if doc := d.DocumentData; doc != nil {
				row[2], row[3] = date(doc.DecisionIssueDate), text(doc.InterferenceOutcomeCategory)
			}
			t.AppendRow(row)
		}
		pageFooter(t, resp.Len(), resp.Count)
		t.Render()
		return nil
	},
}

func pagingFlags(cmd *cobra.Command, q *odp.PTABQuery) {
	f := cmd.Flags()
	f.StringVarP(&q.Query, "query", "q", "", "Raw query; overrides the field flags.")
	f.StringVar(&q.Sort, "sort", "", "Sort expression.")
	f.IntVar(&q.Offset, "offset", 0, "Number of records to skip.")
	f.IntVar(&q.Limit, "limit", odp.DefaultLimit, "Records per page.")
}

func init() {
	f := ptabTrialsCmd.Flags()
	pagingFlags(ptabTrialsCmd, &ptabTrialSearch.PTABQuery)
	f.StringVar(&ptabTrialSearch.TrialNumberQ, "trial", "", "Match the trial number, e.g. IPR2023-00001.")
	f.StringVar(&ptabTrialSearch.TrialTypeCodeQ, "type", "", "Match the trial type: IPR, PGR, CBM or DER.")
	f.StringVar(&ptabTrialSearch.PatentOwnerNameQ, "owner", "", "Match the patent owner.")
	f.StringVar(&ptabTrialSearch.PetitionerPartyNameQ, "petitioner", "", "Match the petitioner.")
	f.StringVar(&ptabTrialSearch.PetitionFilingDateFromQ, "from", "", "Petition filed on or after (YYYY-MM-DD).")
	f.StringVar(&ptabTrialSearch.PetitionFilingDateToQ, "to", "", "Petition filed on or before (YYYY-MM-DD).")

	f = ptabDecisionsCmd.Flags()
	pagingFlags(ptabDecisionsCmd, &ptabDecisionSearch.PTABQuery)
	f.StringVar(&ptabDecisionSearch.TrialNumberQ, "trial", "", "Match the trial number.")
	f.StringVar(&ptabDecisionSearch.DecisionTypeCategoryQ, "decision", "", "Match the decision type.")
	f.StringVar(&ptabDecisionSearch.DecisionDateFromQ, "from", "", "Decided on or after (YYYY-MM-DD).")
	f.StringVar(&ptabDecisionSearch.DecisionDateToQ, "to", "", "Decided on or before (YYYY-MM-DD).")

	f = ptabInterferencesCmd.Flags()
	pagingFlags(ptabInterferencesCmd, &ptabInterferenceSearch.PTABQuery)
	f.StringVar(&ptabInterferenceSearch.InterferenceNumberQ, "interference", "", "Match the interference number.")
	f.StringVar(&ptabInterferenceSearch.SeniorPartyNameQ, "senior", "", "Match the senior party.")
	f.StringVar(&ptabInterferenceSearch.JuniorPartyNameQ, "junior", "", "Match the junior party.")
	f.StringVar(&ptabInterferenceSearch.InterferenceOutcomeCategoryQ, "outcome", "", "Match the outcome.")
	f.StringVar(&ptabInterferenceSearch.DecisionDateFromQ, "from", "", "Decided on or after (YYYY-MM-DD).")
	f.StringVar(&ptabInterferenceSearch.DecisionDateToQ, "to", "", "Decided on or before (YYYY-MM-DD).")

	ptabCmd.AddCommand(ptabTrialsCmd, ptabDecisionsCmd, ptabInterferencesCmd)
	rootCmd.AddCommand(ptabCmd)
}
