package stream

import "time"

type batchWindow struct {
	small time.Duration
	large time.Duration
}

var defaultBatchWindow = &batchWindow{
	small: batchWindowSmallMillis * time.Millisecond,
	large: batchWindowLargeMillis * time.Millisecond,
}

func (w *batchWindow) sleepSmall() { time.Sleep(w.small) }
func (w *batchWindow) sleepLarge() { time.Sleep(w.large) }
