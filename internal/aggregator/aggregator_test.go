package aggregator

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFanInIndependence(t *testing.T) {
	tasks := []Task{
		{Name: "a", Fetch: func(ctx context.Context) (interface{}, error) { return "payload-a", nil }},
		{Name: "b", Fetch: func(ctx context.Context) (interface{}, error) { return nil, errors.New("upstream down") }},
		{Name: "c", Fetch: func(ctx context.Context) (interface{}, error) { return "payload-c", nil }},
	}

	report := Run(context.Background(), tasks)

	require.Len(t, report.Slots, 3)
	assert.Equal(t, "payload-a", report.Slots["a"].Value)
	assert.Equal(t, "payload-c", report.Slots["c"].Value)
	assert.Nil(t, report.Slots["b"].Value)
	assert.Error(t, report.Slots["b"].Err)
	assert.False(t, report.LastRefresh.IsZero())
}

func TestRunFiveTasksOneRejects(t *testing.T) {
	before := time.Now()

	tasks := make([]Task, 5)
	for i := range tasks {
		i := i
		tasks[i] = Task{
			Name: fmt.Sprintf("slot%d", i),
			Fetch: func(ctx context.Context) (interface{}, error) {
				if i == 1 {
					return nil, errors.New("boom")
				}
				return i, nil
			},
		}
	}

	report := Run(context.Background(), tasks)
	payloads := report.Payloads()

	require.Len(t, payloads, 5)

	var populated, null int
	for _, v := range payloads {
		if v == nil {
			null++
		} else {
			populated++
		}
	}

	assert.Equal(t, 4, populated)
	assert.Equal(t, 1, null)
	assert.Nil(t, payloads["slot1"])
	assert.False(t, report.LastRefresh.Before(before))
}

func TestRunSlowSiblingNotCancelled(t *testing.T) {
	tasks := []Task{
		{Name: "fast-fail", Fetch: func(ctx context.Context) (interface{}, error) {
			return nil, errors.New("immediate failure")
		}},
		{Name: "slow-ok", Fetch: func(ctx context.Context) (interface{}, error) {
			select {
			case <-time.After(50 * time.Millisecond):
				return "made it", nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}},
	}

	report := Run(context.Background(), tasks)

	assert.Equal(t, "made it", report.Slots["slow-ok"].Value)
	assert.Error(t, report.Slots["fast-fail"].Err)
}

func TestRunEmpty(t *testing.T) {
	report := Run(context.Background(), nil)

	assert.Empty(t, report.Slots)
	assert.False(t, report.LastRefresh.IsZero())
}
