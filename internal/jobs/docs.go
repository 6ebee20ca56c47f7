// Package jobs provides scheduled background tasks for the ordering service.
//
// Jobs use github.com/robfig/cron/v3 and log through zap with a component field.
//
// # Available Jobs
//
// 1. StaleOrderJob - Periodically reports PENDING orders the kitchen has not picked up
//
// # Usage
//
//	jobManager, err := jobs.NewJobManager(jobs.Config{
//		StaleOrderAfter:    10 * time.Minute,
//		StaleOrderSchedule: "0 * * * * *",
//	}, staleOrdersHandler, notifier, logger)
//	if err != nil {
//		return err
//	}
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are cron expressions with a leading seconds field.
package jobs
