package capture

import (
	"context"
	"sync"
)

// MockDevice is a deterministic Device for testing. It hands back a fixed
// blob on Stop and can be configured to fail acquisition.
type MockDevice struct {
	// StartErr, when set, is returned from Start (device denied).
	StartErr error

	// Blob is returned from Stop.
	Blob Audio

	mu      sync.Mutex
	started int
	stopped int
}

func (d *MockDevice) Start(_ context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.StartErr != nil {
		return d.StartErr
	}
	d.started++
	return nil
}

func (d *MockDevice) Stop() (Audio, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped++
	return d.Blob, nil
}

// StartCount returns how many times the device was acquired.
func (d *MockDevice) StartCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.started
}

// StopCount returns how many times the device was released.
func (d *MockDevice) StopCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stopped
}
