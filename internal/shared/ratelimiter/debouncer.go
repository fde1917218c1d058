package ratelimiter

import (
	"sync"
	"time"
)

// DefaultInterval は連続送信の最小間隔です。
const DefaultInterval = 300 * time.Millisecond

// Gate は操作を許可するかどうかを判定するインターフェースです。
type Gate interface {
	Allow() bool
}

// Debouncerは、前回許可した時刻からintervalを超えて経過した場合のみ操作を許可します。
// 並行性の制御ではなく、描画中の送信頻度を抑えるためのものです。
type Debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	now      func() time.Time
	last     time.Time
	fired    bool
}

// NewDebouncerは新しいDebouncerのインスタンスを生成します。intervalが0以下ならDefaultIntervalを使います。
func NewDebouncer(interval time.Duration) *Debouncer {
	return NewDebouncerWithClock(interval, time.Now)
}

// NewDebouncerWithClockは時刻取得関数を差し替えたDebouncerを生成します（テスト用）。
func NewDebouncerWithClock(interval time.Duration, now func() time.Time) *Debouncer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if now == nil {
		now = time.Now
	}
	return &Debouncer{interval: interval, now: now}
}

// Allowは初回、または前回許可からintervalを厳密に超えていればtrueを返し、時刻を記録します。
// ちょうどintervalの場合は許可しません。
func (d *Debouncer) Allow() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	if d.fired && now.Sub(d.last) <= d.interval {
		return false
	}
	d.last = now
	d.fired = true
	return true
}

// Intervalは設定されている最小間隔を返します。
func (d *Debouncer) Interval() time.Duration {
	return d.interval
}
