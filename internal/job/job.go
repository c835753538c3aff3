// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package job

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// Job represents a scheduled task that runs at a fixed interval and never overlaps with
// itself (singleton mode). The first run starts immediately.
type Job struct {
	name     string
	interval time.Duration
	task     func(context.Context)
}

// New creates a new Job with the given name, interval and task.
func New(name string, interval time.Duration, task func(context.Context)) *Job {
	return &Job{
		name:     name,
		interval: interval,
		task:     task,
	}
}

// Start runs the job until ctx is cancelled and then shuts the scheduler down. A tick that
// fires while the previous run is still executing is rescheduled instead of run in parallel.
func (j *Job) Start(ctx context.Context) error {
	if j.task == nil || j.interval <= 0 {
		return errors.New("job requires a task and a positive interval")
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	_, err = scheduler.NewJob(
		gocron.DurationJob(j.interval),
		gocron.NewTask(j.task),
		gocron.WithContext(ctx),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithName(j.name),
	)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", j.name, err)
	}
	scheduler.Start()

	<-ctx.Done()
	if err = scheduler.Shutdown(); err != nil {
		return fmt.Errorf("failed to shut down scheduler: %w", err)
	}
	return nil
}
