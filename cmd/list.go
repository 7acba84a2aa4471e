package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"storeadmin.GO/listing"
	"storeadmin.GO/model/view"
	"storeadmin.GO/resource"
	"storeadmin.GO/upstream"
)

var (
	listPage     int
	listSearch   string
	listSort     string
	listPageSize int
	listFilters  []string
)

var listCmd = &cobra.Command{
	Use:   "resource:list [resource]",
	Short: "List entities of a resource, or all known resources when none is given",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			printResources()
			return
		}

		desc, ok := resource.Lookup(args[0])
		if !ok {
			fmt.Printf("Unknown resource: %s\n", args[0])
			os.Exit(1)
		}

		state := buildState()
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		ctrl := listing.NewController(upstream.NewFromEnv(), desc)
		res, err := ctrl.Fetch(ctx, state)
		if err != nil {
			fmt.Printf("Fetch failed: %v\n", err)
			os.Exit(1)
		}

		for _, w := range res.Warnings {
			fmt.Printf("  [warn] %s\n", w)
		}
		printRows(desc, res.Rows)
		fmt.Printf("\n%d of %d entities (page %d/%d)\n", len(res.Rows), res.Count, state.Page, state.TotalPages(res.Count))
	},
}

func buildState() listing.QueryState {
	values := url.Values{}
	if listPage > 0 {
		values.Set("page", fmt.Sprint(listPage))
	}
	if listSearch != "" {
		values.Set("q", listSearch)
	}
	if listSort != "" {
		values.Set("order", listSort)
	}
	if listPageSize > 0 {
		values.Set("page_size", fmt.Sprint(listPageSize))
	}
	for _, f := range listFilters {
		parts := strings.SplitN(f, "=", 2)
		if len(parts) == 2 && parts[0] != "" {
			values.Add(parts[0], parts[1])
		}
	}
	return listing.ParseQuery(values)
}

func printResources() {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tENDPOINT\tLABEL")
	for _, desc := range resource.All() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", desc.Name, desc.Endpoint, desc.Label)
	}
	w.Flush()
}

func printRows(desc resource.Descriptor, rows []map[string]interface{}) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	switch desc.Name {
	case "orders":
		fmt.Fprintln(w, "ID\tSTATUS\tPAYMENT\tEMAIL\tTOTAL")
		for _, row := range rows {
			o := view.DecodeOrder(row)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f %s\n", o.ID, o.Status, o.PaymentStatus, o.Email, o.Total, o.CurrencyCode)
		}
	case "products":
		fmt.Fprintln(w, "ID\tTITLE\tHANDLE\tSTATUS")
		for _, row := range rows {
			p := view.DecodeProduct(row)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Title, p.Handle, p.Status)
		}
	case "customers":
		fmt.Fprintln(w, "ID\tEMAIL\tNAME")
		for _, row := range rows {
			c := view.DecodeCustomer(row)
			fmt.Fprintf(w, "%s\t%s\t%s %s\n", c.ID, c.Email, c.FirstName, c.LastName)
		}
	default:
		fmt.Fprintln(w, strings.ToUpper(strings.Join(append([]string{"id"}, desc.Columns...), "\t")))
		for _, row := range rows {
			cells := []string{cellValue(row, "id")}
			for _, col := range desc.Columns {
				cells = append(cells, cellValue(row, col))
			}
			fmt.Fprintln(w, strings.Join(cells, "\t"))
		}
	}
}

func cellValue(row map[string]interface{}, key string) string {
	switch v := row[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func init() {
	listCmd.Flags().IntVar(&listPage, "page", 1, "Page number (1-based)")
	listCmd.Flags().StringVarP(&listSearch, "search", "q", "", "Free-text search")
	listCmd.Flags().StringVar(&listSort, "sort", "", "Sort key, prefix with - for descending")
	listCmd.Flags().IntVar(&listPageSize, "page-size", 0, "Rows per page (20, 50 or 100)")
	listCmd.Flags().StringArrayVarP(&listFilters, "filter", "f", nil, "Filter as key=value, repeatable")
	rootCmd.AddCommand(listCmd)
}
