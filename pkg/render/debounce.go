package render

import (
	"sync"
	"time"
)

// Debouncer 单定时器防抖。每次触发都会取消尚未执行的上一次调度，
// 窗口期内只有最后一次触发真正执行。缩略图生成用它吸收连续编辑。
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	seq   uint64
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger 调度一次执行，取代任何待执行的调度
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	seq := d.seq
	d.timer = time.AfterFunc(d.delay, func() {
		// 定时器Stop和函数执行存在竞争窗口，用序号判定是否已被取代
		d.mu.Lock()
		current := d.seq == seq
		d.mu.Unlock()
		if current {
			fn()
		}
	})
}

// Stop 取消待执行的调度，已在执行中的不受影响
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
}
