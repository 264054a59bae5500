package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Conversia-AI/craftable-convx/convx"
	"github.com/Conversia-AI/craftable-convx/storex"
)

type ListOptions struct {
	*GlobalOptions

	From     string
	To       string
	Page     int
	PageSize int
}

type listEntry struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func DefaultListOptions(global *GlobalOptions) *ListOptions {
	return &ListOptions{
		GlobalOptions: global,
		Page:          storex.DefaultPage,
		PageSize:      storex.MaxPageSize,
	}
}

func NewCmdList(global *GlobalOptions) *cobra.Command {
	o := DefaultListOptions(global)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered conversions.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *ListOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.From, "from", o.From, "only show conversions whose source type contains this text")
	fs.StringVar(&o.To, "to", o.To, "only show conversions whose target type contains this text")
	fs.IntVar(&o.Page, "page", o.Page, "page to show, starting at 1")
	fs.IntVar(&o.PageSize, "page-size", o.PageSize, "number of conversions per page")
}

func (o *ListOptions) Validate(args []string) error {
	return o.pagination().Validate()
}

func (o *ListOptions) pagination() storex.PaginationOptions {
	return storex.PaginationOptions{Page: o.Page, PageSize: o.PageSize}
}

func (o *ListOptions) Run(w io.Writer) error {
	entries := lo.FilterMap(o.Registry().Entries(), func(e convx.Entry, _ int) (listEntry, bool) {
		le := listEntry{From: e.From.String(), To: e.To.String()}
		return le, strings.Contains(le.From, o.From) && strings.Contains(le.To, o.To)
	})

	page := storex.Paginate(entries, o.pagination())
	if o.Output == jsonFormat {
		return printJSON(w, page)
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	header := color.New(color.Bold, color.FgCyan)
	fmt.Fprintln(tw, header.Sprint("FROM")+"\t"+header.Sprint("TO"))
	for _, e := range page.Items {
		fmt.Fprintf(tw, "%s\t%s\n", e.From, e.To)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	footer := color.New(color.Faint)
	fmt.Fprintln(w, footer.Sprintf("page %d of %d, %d conversions", page.Page, max(page.TotalPages, 1), page.TotalItems))
	return nil
}
