package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"smartscholar/internal/services"
)

// Start schedules the daily scholarship reminder sweep at 09:00 in the
// given timezone. Outside production it also runs one sweep immediately so
// local changes can be verified without waiting a day.
func Start(reminders *services.ReminderService, tz string, appEnv string) (*cron.Cron, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, err
	}

	c := cron.New(cron.WithLocation(loc))
	_, err = c.AddFunc("0 9 * * *", func() {
		log.Println("scheduler: running scholarship reminder sweep")
		reminders.CheckAndRemind(context.Background())
	})
	if err != nil {
		return nil, err
	}

	c.Start()

	if appEnv != "production" {
		go func() {
			log.Println("scheduler: startup reminder sweep")
			reminders.CheckAndRemind(context.Background())
		}()
	}

	return c, nil
}
