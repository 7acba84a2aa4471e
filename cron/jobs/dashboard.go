package jobs

import (
	"context"
	"log"
	"time"

	"storeadmin.GO/cron"
	"storeadmin.GO/service/dashboard"
	"storeadmin.GO/upstream"
)

func init() {
	cron.Register("dashboardsnapshot", "@every 15m", DashboardSnapshotJob)
}

// DashboardSnapshotJob refreshes the cached entity counts so the dashboard
// never waits on 20+ upstream calls interactively.
func DashboardSnapshotJob(args ...string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	snap := dashboard.Collect(ctx, upstream.NewFromEnv())
	if err := dashboard.Store(snap); err != nil {
		log.Printf("dashboardsnapshot: store failed: %v", err)
		return
	}
	log.Printf("dashboardsnapshot: refreshed %d resources, %d warnings", len(snap.Counts), len(snap.Warnings))
}
