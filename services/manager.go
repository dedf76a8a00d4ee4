package services

import (
	"fmt"
	"sync"
	"time"
)

// MonitorManager runs one periodic check loop per channel. Starting a
// channel that already has a loop replaces it, matching webhook
// re-registration semantics.
type MonitorManager struct {
	mu    sync.Mutex
	stops map[string]chan struct{}
}

func NewMonitorManager() *MonitorManager {
	return &MonitorManager{stops: make(map[string]chan struct{})}
}

func (m *MonitorManager) Start(channelID string, interval time.Duration, check func()) {
	m.mu.Lock()
	if stop, ok := m.stops[channelID]; ok {
		close(stop)
	}
	stop := make(chan struct{})
	m.stops[channelID] = stop
	m.mu.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				func() {
					defer func() {
						if r := recover(); r != nil {
							fmt.Printf("Monitor loop panic for %s: %v\n", channelID, r)
						}
					}()
					check()
				}()
			}
		}
	}()
}

func (m *MonitorManager) Stop(channelID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if stop, ok := m.stops[channelID]; ok {
		close(stop)
		delete(m.stops, channelID)
	}
}

// StopAll cancels every loop; used on shutdown.
func (m *MonitorManager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, stop := range m.stops {
		close(stop)
		delete(m.stops, id)
	}
}
