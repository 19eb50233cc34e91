package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"
	"github.com/jedib0t/go-pretty/v6/table"

	odp "github.com/patent-dev/uspto-odp"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// progressPrinter reports download progress on stderr.
func progressPrinter(name string) odp.ProgressFunc {
	return func(written, total int64) {
		if total > 0 {
			fmt.Fprintf(os.Stderr, "\r%s: %s / %s", name, humanize.Bytes(uint64(written)), humanize.Bytes(uint64(total)))
			return
		}
		fmt.Fprintf(os.Stderr, "\r%s: %s", name, humanize.Bytes(uint64(written)))
	}
}

func size(n int) string {
	if n <= 0 {
		return "-"
	}
	return humanize.Bytes(uint64(n))
}

func date(d *odp.Date) string {
	if s := odp.EncodeDate(d); s != "" {
		return s
	}
	return "-"
}

func text(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func pageFooter(t table.Writer, shown, count int) {
	t.AppendFooter(table.Row{fmt.Sprintf("%d of %s", shown, humanize.Comma(int64(count)))})
}
