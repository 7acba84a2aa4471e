package cron

import (
	"log"

	"github.com/robfig/cron/v3"

	"storeadmin.GO/config"
)

func StartCron() *cron.Cron {
	c := cron.New()
	for name, cronJob := range config.CronJobs {
		jobFunc := cronJob.Job
		_, err := c.AddFunc(cronJob.Schedule, func() { jobFunc() })
		if err != nil {
			log.Fatalf("Failed to register job %s: %v", name, err)
		}
	}
	for name, j := range Jobs() {
		run := j.Run
		sched := j.Schedule
		_, err := c.AddFunc(sched, func() { run() })
		if err != nil {
			log.Fatalf("Failed to register job %s: %v", name, err)
		}
	}
	c.Start()
	return c
}
