package worker

import (
	"context"

	"golang.org/x/time/rate"
)

// Throughput limits how many records per second a batch run emits
// toward downstream persistence. A nil *Throughput imposes no limit, so
// callers never branch.
type Throughput struct {
	limiter *rate.Limiter
}

// NewThroughput creates a limiter. recordsPerSecond <= 0 disables
// limiting.
func NewThroughput(recordsPerSecond float64, burst int) *Throughput {
	if recordsPerSecond <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return &Throughput{
		limiter: rate.NewLimiter(rate.Limit(recordsPerSecond), burst),
	}
}

// WaitRecords blocks until n records may be emitted. Bursts larger than
// the limiter can ever admit are drained in chunks rather than
// rejected.
func (t *Throughput) WaitRecords(ctx context.Context, n int) error {
	if t == nil || n <= 0 {
		return nil
	}

	burst := t.limiter.Burst()
	for n > 0 {
		chunk := n
		if chunk > burst {
			chunk = burst
		}
		if err := t.limiter.WaitN(ctx, chunk); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}
