// Package scheduler: cron ringan untuk cek ketersediaan backend data.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"diporani_web/internals/remote"
)

const probeTimeout = 5 * time.Second

type Status struct {
	OK        bool      `json:"ok"`
	CheckedAt time.Time `json:"checked_at"`
	LatencyMS int64     `json:"latency_ms"`
	Error     string    `json:"error,omitempty"`
}

type BackendProbe struct {
	Client remote.Client
	Log    *zap.Logger
	Now    func() time.Time

	mu   sync.RWMutex
	last *Status
}

func NewBackendProbe(client remote.Client, log *zap.Logger) *BackendProbe {
	return &BackendProbe{Client: client, Log: log.Named("probe"), Now: time.Now}
}

// RunOnce memanggil Ping dan menyimpan hasilnya.
func (p *BackendProbe) RunOnce(ctx context.Context) Status {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := p.Now()
	err := p.Client.Ping(ctx)
	st := Status{
		OK:        err == nil,
		CheckedAt: start,
		LatencyMS: p.Now().Sub(start).Milliseconds(),
	}
	if err != nil {
		st.Error = err.Error()
		p.Log.Warn("⚠️ backend tidak merespons", zap.Error(err))
	} else {
		p.Log.Debug("✅ backend OK", zap.Int64("latency_ms", st.LatencyMS))
	}

	p.mu.Lock()
	p.last = &st
	p.mu.Unlock()
	return st
}

// Last: hasil probe terakhir; false kalau belum pernah jalan.
func (p *BackendProbe) Last() (Status, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.last == nil {
		return Status{}, false
	}
	return *p.last, true
}

// Start menjadwalkan probe. Schedule kosong atau "off" = probe dimatikan (nil, nil).
func (p *BackendProbe) Start(schedule string) (*cron.Cron, error) {
	if schedule == "" || schedule == "off" {
		p.Log.Info("⏸️ probe backend dimatikan", zap.String("schedule", schedule))
		return nil, nil
	}
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := c.AddFunc(schedule, func() { p.RunOnce(context.Background()) }); err != nil {
		return nil, fmt.Errorf("jadwal probe %q tidak valid: %w", schedule, err)
	}
	c.Start()
	p.Log.Info("⏱️ probe backend aktif", zap.String("schedule", schedule))
	return c, nil
}
