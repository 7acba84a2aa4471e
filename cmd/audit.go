package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"storeadmin.GO/config"
	entity "storeadmin.GO/model/entity"
	auditRepo "storeadmin.GO/model/repository/audit"
)

var (
	auditLimit    int
	auditResource string
)

var auditCmd = &cobra.Command{
	Use:   "audit:recent",
	Short: "Show recent console actions from the local audit log",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			os.Exit(1)
		}

		repo := auditRepo.NewAuditRepository(db)
		var entries []entity.AuditEntry
		if auditResource != "" {
			entries, err = repo.RecentByResource(auditResource, auditLimit)
		} else {
			entries, err = repo.Recent(auditLimit)
		}
		if err != nil {
			fmt.Printf("Audit lookup failed: %v\n", err)
			os.Exit(1)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "WHEN\tRESOURCE\tACTION\tENTITY\tOUTCOME\tMESSAGE")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				e.CreatedAt.Format("2006-01-02 15:04:05"), e.Resource, e.Action, e.EntityID, e.Outcome, e.Message)
		}
		w.Flush()
	},
}

func init() {
	auditCmd.Flags().IntVarP(&auditLimit, "limit", "n", 20, "Number of entries to show")
	auditCmd.Flags().StringVarP(&auditResource, "resource", "r", "", "Only entries for this resource")
	rootCmd.AddCommand(auditCmd)
}
