package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	odp "github.com/patent-dev/uspto-odp"
)

var appsCmd = &cobra.Command{
	Use:     "apps",
	Aliases: []string{"applications"},
	Short:   "Search and inspect patent applications.",
}

var (
	appSearch odp.ApplicationSearchOptions
	appsCSV   bool
	appsAll   bool
	appsMax   int
)

var appsSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Searches patent applications.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var wrappers []odp.PatentFileWrapper
		count := 0
		if appsAll {
			for w, err := range client.PaginateApplications(ctx, appSearch) {
				if err != nil {
					return err
				}
				wrappers = append(wrappers, w)
				if appsMax > 0 && len(wrappers) >= appsMax {
					break
				}
			}
			count = len(wrappers)
		} else {
			resp, err := client.SearchApplications(ctx, appSearch)
			if err != nil {
				return err
			}
			wrappers, count = resp.Items, resp.Count
		}

		if appsCSV {
			return odp.WriteApplicationsCSV(os.Stdout, wrappers)
		}

		t := newTable(os.Stdout)
		t.AppendHeader(table.Row{"Application", "Title", "Filed", "Status", "Patent", "First inventor"})
		for _, w := range wrappers {
			meta := w.ApplicationMetaData
			if meta == nil {
				t.AppendRow(table.Row{w.ApplicationNumber(), "-", "-", "-", "-", "-"})
				continue
			}
			t.AppendRow(table.Row{
				w.ApplicationNumber(),
				text(meta.InventionTitle),
				date(meta.FilingDate),
				text(meta.ApplicationStatusDescriptionText),
				text(meta.PatentNumber),
				text(meta.FirstInventorName),
			})
		}
		pageFooter(t, len(wrappers), count)
		t.Render()
		return nil
	},
}

var appSection string

// sections maps --section values to the per-application lookups.
var sections = map[string]func(cmd *cobra.Command, number string) (any, error){
	"all": func(cmd *cobra.Command, n string) (any, error) { return client.GetApplication(cmd.Context(), n) },
	"metadata": func(cmd *cobra.Command, n string) (any, error) {
		return client.GetApplicationMetadata(cmd.Context(), n)
	},
	"adjustment": func(cmd *cobra.Command, n string) (any, error) {
		return client.GetApplicationAdjustment(cmd.Context(), n)
	},
	"assignments": func(cmd *cobra.Command, n string) (any, error) {
		return client.GetApplicationAssignments(cmd.Context(), n)
	},
	"attorney": func(cmd *cobra.Command, n string) (any, error) {
		return client.GetApplicationAttorney(cmd.Context(), n)
	},
	"continuity": func(cmd *cobra.Command, n string) (any, error) {
		return client.GetApplicationContinuity(cmd.Context(), n)
	},
	"foreign-priority": func(cmd *cobra.Command, n string) (any, error) {
		return client.GetApplicationForeignPriority(cmd.Context(), n)
	},
	"transactions": func(cmd *cobra.Command, n string) (any, error) {
		return client.GetApplicationTransactions(cmd.Context(), n)
	},
	"associated-documents": func(cmd *cobra.Command, n string) (any, error) {
		return client.GetApplicationAssociatedDocuments(cmd.Context(), n)
	},
}

var ifw odp.IFWLookup

var appsGetCmd = &cobra.Command{
	Use:   "get [application-number]",
	Short: "Prints an application, or one section of it, as JSON.",
	Long: "Prints an application as JSON. Without an application number the record is looked up " +
		"by --patent, --publication, --pct-application or --pct-publication.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			w, err := client.GetIFWMetadata(cmd.Context(), ifw)
			if err != nil {
				return err
			}
			return printJSON(os.Stdout, w)
		}

		fetch, ok := sections[appSection]
		if !ok {
			return fmt.Errorf("unknown section %q", appSection)
		}
		v, err := fetch(cmd, args[0])
		if err != nil {
			return err
		}
		return printJSON(os.Stdout, v)
	},
}

var (
	docDownload string
	docFormat   string
)

var appsDocumentsCmd = &cobra.Command{
	Use:   "documents <application-number>",
	Short: "Lists the file wrapper documents of an application, or downloads one.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		bag, err := client.GetApplicationDocuments(ctx, args[0])
		if err != nil {
			return err
		}

		if docDownload != "" {
			doc, ok := bag.Documents.Find(func(d odp.Document) bool {
				return d.DocumentIdentifier != nil && *d.DocumentIdentifier == docDownload
			})
			if !ok {
				return &odp.NotFoundError{Resource: "document", ID: docDownload}
			}
			format, ok := doc.Format(docFormat)
			if !ok {
				return fmt.Errorf("document %s has no %s rendition", docDownload, docFormat)
			}
			path, err := client.DownloadDocument(ctx, format, odp.DownloadOptions{
				Destination: downloadDest,
				Overwrite:   downloadOverwrite,
				Extract:     downloadExtract,
				Progress:    progressPrinter(docDownload),
			})
			fmt.Fprintln(os.Stderr)
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		}

		t := newTable(os.Stdout)
		t.AppendHeader(table.Row{"Document", "Date", "Code", "Description", "Direction", "Formats"})
		for d := range bag.Documents.All() {
			var formats []string
			for _, f := range d.DownloadOptionBag {
				formats = append(formats, text(f.MimeTypeIdentifier))
			}
			official := "-"
			if d.OfficialDate != nil {
				official = d.OfficialDate.Format("2006-01-02")
			}
			t.AppendRow(table.Row{
				text(d.DocumentIdentifier),
				official,
				text(d.DocumentCode),
				text(d.DocumentCodeDescriptionText),
				d.Direction(),
				strings.Join(formats, ", "),
			})
		}
		t.Render()
		return nil
	},
}

func init() {
	f := appsSearchCmd.Flags()
	f.StringVarP(&appSearch.Query, "query", "q", "", "Raw query; overrides the field flags.")
	f.StringVar(&appSearch.InventorNameQ, "inventor", "", "Match an inventor name.")
	f.StringVar(&appSearch.ApplicantNameQ, "applicant", "", "Match the first applicant.")
	f.StringVar(&appSearch.AssigneeNameQ, "assignee", "", "Match an assignee.")
	f.StringVar(&appSearch.ClassificationQ, "cpc", "", "Match a CPC classification.")
	f.StringVar(&appSearch.FilingDateFromQ, "filed-from", "", "Filed on or after (YYYY-MM-DD).")
	f.StringVar(&appSearch.FilingDateToQ, "filed-to", "", "Filed on or before (YYYY-MM-DD).")
	f.StringVar(&appSearch.Sort, "sort", "", "Sort expression, e.g. \"applicationMetaData.filingDate desc\".")
	f.IntVar(&appSearch.Offset, "offset", 0, "Number of results to skip.")
	f.IntVar(&appSearch.Limit, "limit", odp.DefaultLimit, "Results per page.")
	f.BoolVar(&appsCSV, "csv", false, "Write CSV instead of a table.")
	f.BoolVar(&appsAll, "all", false, "Follow pagination.")
	f.IntVar(&appsMax, "max", 500, "Stop --all after this many results; 0 for no limit.")

	g := appsGetCmd.Flags()
	g.StringVar(&appSection, "section", "all", "One of all, metadata, adjustment, assignments, attorney, "+
		"continuity, foreign-priority, transactions, associated-documents.")
	g.StringVar(&ifw.PatentNumber, "patent", "", "Look up by patent number.")
	g.StringVar(&ifw.PublicationNumber, "publication", "", "Look up by pre-grant publication number.")
	g.StringVar(&ifw.PCTApplicationNumber, "pct-application", "", "Look up by PCT application number.")
	g.StringVar(&ifw.PCTPublicationNumber, "pct-publication", "", "Look up by PCT publication number.")

	d := appsDocumentsCmd.Flags()
	d.StringVar(&docDownload, "download", "", "Download the document with this identifier.")
	d.StringVar(&docFormat, "format", "PDF", "Rendition to download.")
	addDownloadFlags(appsDocumentsCmd)

	appsCmd.AddCommand(appsSearchCmd, appsGetCmd, appsDocumentsCmd)
	rootCmd.AddCommand(appsCmd)
}
