package config

// CronJob pairs a cron schedule with the function to run.
type CronJob struct {
	Schedule string
	Job      func(...string)
}

// CronJobs lists statically configured jobs. Packages can also self-register
// via cron.Register from init(); the scheduler merges both sources.
var CronJobs = map[string]CronJob{
	// Add more jobs here
}
