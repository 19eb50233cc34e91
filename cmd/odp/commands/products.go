package commands

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	odp "github.com/patent-dev/uspto-odp"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Search, inspect and download bulk data products.",
}

var productSearch odp.ProductSearchOptions

var productsSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Lists bulk data products.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.SearchProducts(cmd.Context(), productSearch)
		if err != nil {
			return err
		}

		t := newTable(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Title", "Frequency", "Files", "Size", "To date"})
		for p := range resp.All() {
			t.AppendRow(table.Row{
				p.ProductIdentifier,
				p.ProductTitleText,
				p.Frequency(),
				p.ProductFileTotalQuantity,
				size(p.ProductTotalFileSize),
				date(p.ProductToDate),
			})
		}
		pageFooter(t, resp.Len(), resp.Count)
		t.Render()
		return nil
	},
}

var productLatest bool

var productsGetCmd = &cobra.Command{
	Use:   "get <product-id>",
	Short: "Shows a product and its files.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := odp.ProductOptions{IncludeFiles: boolFlag(true)}
		if productLatest {
			opts.Latest = boolFlag(true)
		}
		product, err := client.GetProductByID(cmd.Context(), args[0], opts)
		if err != nil {
			return err
		}

		fmt.Printf("%s: %s\n", product.ProductIdentifier, product.ProductTitleText)
		if product.ProductDescriptionText != "" {
			fmt.Println(product.ProductDescriptionText)
		}
		fmt.Printf("Frequency: %s, %d files, %s\n\n", product.Frequency(), product.ProductFileTotalQuantity, size(product.ProductTotalFileSize))

		t := newTable(os.Stdout)
		t.AppendHeader(table.Row{"File", "Type", "Size", "Released", "From", "To"})
		for f := range product.Files().All() {
			t.AppendRow(table.Row{f.FileName, f.FileType(), size(f.FileSize), date(f.FileReleaseDate), date(f.FileDataFromDate), date(f.FileDataToDate)})
		}
		t.Render()
		return nil
	},
}

var (
	downloadDest      string
	downloadExtract   bool
	downloadOverwrite bool
)

var productsDownloadCmd = &cobra.Command{
	Use:   "download <product-id> [file-name]",
	Short: "Downloads one file of a product, the most recently released one by default.",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var file *odp.FileData
		if len(args) == 2 {
			product, err := client.GetProductByID(ctx, args[0], odp.ProductOptions{IncludeFiles: boolFlag(true)})
			if err != nil {
				return err
			}
			found, ok := product.Files().Find(func(f odp.FileData) bool { return f.FileName == args[1] })
			if !ok {
				return &odp.NotFoundError{Resource: "file", ID: args[1]}
			}
			file = &found
		} else {
			latest, err := client.GetLatestFile(ctx, args[0])
			if err != nil {
				return err
			}
			file = latest
		}

		path, err := client.DownloadFile(ctx, *file, odp.DownloadOptions{
			Destination: downloadDest,
			Overwrite:   downloadOverwrite,
			Extract:     downloadExtract,
			Progress:    progressPrinter(file.FileName),
		})
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func boolFlag(b bool) *bool { return &b }

func addDownloadFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&downloadDest, "dest", "d", ".", "Directory to save into.")
	cmd.Flags().BoolVar(&downloadOverwrite, "overwrite", false, "Replace existing files.")
	cmd.Flags().BoolVarP(&downloadExtract, "extract", "x", false, "Unpack zip and tar archives after download.")
}

func init() {
	f := productsSearchCmd.Flags()
	f.StringVarP(&productSearch.Query, "query", "q", "", "Raw query.")
	f.StringVar(&productSearch.ProductTitleQ, "title", "", "Match the product title.")
	f.StringVar(&productSearch.DatasetQ, "dataset", "", "Match the dataset.")
	f.StringVar(&productSearch.CategoryQ, "category", "", "Match the dataset category.")
	f.StringVar(&productSearch.FileTypeQ, "file-type", "", "Match a file MIME type.")
	f.StringVar(&productSearch.FromDateQ, "from", "", "Products covering data from this date (YYYY-MM-DD).")
	f.StringVar(&productSearch.ToDateQ, "to", "", "Products covering data up to this date (YYYY-MM-DD).")
	f.IntVar(&productSearch.Offset, "offset", 0, "Number of products to skip.")
	f.IntVar(&productSearch.Limit, "limit", odp.DefaultLimit, "Products per page.")

	productsGetCmd.Flags().BoolVar(&productLatest, "latest", false, "Only the latest files.")
	addDownloadFlags(productsDownloadCmd)

	productsCmd.AddCommand(productsSearchCmd, productsGetCmd, productsDownloadCmd)
	rootCmd.AddCommand(productsCmd)
}
