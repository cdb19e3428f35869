package services

import "time"

// capturingRecorder collects metric calls for assertions
type capturingRecorder struct {
	counters []capturedCounter
	timings  []capturedTiming
}

type capturedCounter struct {
	name string
	tags map[string]string
}

type capturedTiming struct {
	name     string
	duration time.Duration
}

func (r *capturingRecorder) IncrementCounter(name string, tags map[string]string) {
	r.counters = append(r.counters, capturedCounter{name: name, tags: tags})
}

func (r *capturingRecorder) RecordProcessingTime(name string, duration time.Duration) {
	r.timings = append(r.timings, capturedTiming{name: name, duration: duration})
}
