package tracker

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/onehub-dev/onehub/internal/cache"
	"github.com/onehub-dev/onehub/internal/sources"
)

const snapshotTTL = 10 * time.Minute

// Tracker periodically refreshes the weather and crypto snapshots in the
// cache so the content handlers have a recent payload to fall back on when
// an upstream call fails.
type Tracker struct {
	jobs   map[string]*refreshJob
	mu     sync.RWMutex
	ctx    context.Context
	cancel context.CancelFunc

	cache   *cache.Client
	weather *sources.WeatherClient
	crypto  *sources.CryptoClient
	city    string
}

type refreshJob struct {
	name    string
	ticker  *time.Ticker
	cancel  context.CancelFunc
	refresh func(ctx context.Context) error
}

func New(store *cache.Client, weather *sources.WeatherClient, crypto *sources.CryptoClient, city string) *Tracker {
	ctx, cancel := context.WithCancel(context.Background())
	return &Tracker{
		jobs:    make(map[string]*refreshJob),
		ctx:     ctx,
		cancel:  cancel,
		cache:   store,
		weather: weather,
		crypto:  crypto,
		city:    city,
	}
}

// Start registers the refresh jobs and begins ticking.
func (t *Tracker) Start(interval time.Duration) {
	logrus.Info("Starting tracker...")

	t.addJob("crypto", interval, t.refreshCrypto)
	t.addJob("weather", interval, t.refreshWeather)

	logrus.Infof("Tracker started with %d jobs", len(t.jobs))
}

// Stop cancels all jobs and their tickers.
func (t *Tracker) Stop() {
	logrus.Info("Stopping tracker...")
	t.cancel()

	t.mu.Lock()
	defer t.mu.Unlock()

	for _, job := range t.jobs {
		job.ticker.Stop()
		job.cancel()
	}

	t.jobs = make(map[string]*refreshJob)
	logrus.Info("Tracker stopped")
}

func (t *Tracker) addJob(name string, interval time.Duration, refresh func(ctx context.Context) error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if existing, exists := t.jobs[name]; exists {
		existing.ticker.Stop()
		existing.cancel()
	}

	jobCtx, jobCancel := context.WithCancel(t.ctx)
	job := &refreshJob{
		name:    name,
		ticker:  time.NewTicker(interval),
		cancel:  jobCancel,
		refresh: refresh,
	}

	t.jobs[name] = job

	// Immediate refresh, then the ticker loop.
	go func() {
		t.execute(jobCtx, job)
		t.run(jobCtx, job)
	}()
}

func (t *Tracker) run(ctx context.Context, job *refreshJob) {
	defer job.ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-job.ticker.C:
			t.execute(ctx, job)
		}
	}
}

func (t *Tracker) execute(ctx context.Context, job *refreshJob) {
	start := time.Now()

	if err := job.refresh(ctx); err != nil {
		logrus.Warnf("Tracker job %s failed: %v", job.name, err)
		return
	}

	logrus.Debugf("Tracker job %s refreshed in %v", job.name, time.Since(start))
}

func (t *Tracker) refreshCrypto(ctx context.Context) error {
	snapshot, err := t.crypto.Snapshot(ctx)
	if err != nil {
		return err
	}
	return t.cache.PutSnapshot(ctx, "crypto", "", snapshot, snapshotTTL)
}

func (t *Tracker) refreshWeather(ctx context.Context) error {
	report, err := t.weather.Report(ctx, t.city)
	if err != nil {
		return err
	}
	return t.cache.PutSnapshot(ctx, "weather", t.city, report, snapshotTTL)
}

// Status reports the running state for the health endpoint.
func (t *Tracker) Status() map[string]interface{} {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return map[string]interface{}{
		"active_jobs": len(t.jobs),
		"running":     t.ctx.Err() == nil,
	}
}
