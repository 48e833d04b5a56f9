package aggregator

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Task is one named unit of a dashboard fan-out. Fetch returns the slot
// payload or an error; errors are captured per slot and never abort siblings.
type Task struct {
	Name  string
	Fetch func(ctx context.Context) (interface{}, error)
}

// Result is the tagged outcome of a single task.
type Result struct {
	Value interface{}
	Err   error
}

// Report is the assembled view-model of one aggregation run. Failed slots are
// present with a nil Value; LastRefresh is stamped once after full fan-in,
// regardless of how many slots failed.
type Report struct {
	Slots       map[string]Result
	LastRefresh time.Time
}

// Run fires every task concurrently and waits for all of them. There is no
// early cancellation: one slot failing must not tear down its siblings, so
// each goroutine owns exactly one result slot and the group is joined with a
// plain WaitGroup.
func Run(ctx context.Context, tasks []Task) Report {
	results := make([]Result, len(tasks))

	var wg sync.WaitGroup
	wg.Add(len(tasks))

	for i, task := range tasks {
		go func(i int, task Task) {
			defer wg.Done()

			value, err := task.Fetch(ctx)
			if err != nil {
				logrus.Warnf("aggregator: %s failed: %v", task.Name, err)
				results[i] = Result{Err: err}
				return
			}

			results[i] = Result{Value: value}
		}(i, task)
	}

	wg.Wait()

	slots := make(map[string]Result, len(tasks))
	for i, task := range tasks {
		slots[task.Name] = results[i]
	}

	return Report{
		Slots:       slots,
		LastRefresh: time.Now(),
	}
}

// Payloads flattens a report into name -> payload, with nil entries for
// failed slots. This is the JSON shape the dashboard endpoint returns.
func (r Report) Payloads() map[string]interface{} {
	out := make(map[string]interface{}, len(r.Slots))
	for name, result := range r.Slots {
		if result.Err != nil {
			out[name] = nil
			continue
		}
		out[name] = result.Value
	}
	return out
}
