package main

import (
	"sort"
	"sync"
	"time"
)

// station is one observed transmitter, keyed by MAC address.
type station struct {
	Addr     string
	SSID     string
	LastSeen time.Time
	Frames   int
}

// stationList is a mutex-guarded table of observed stations, the same
// shape as the AP/client tables a monitor tool keeps while dumping a
// live capture.
type stationList struct {
	mu       sync.Mutex
	stations map[string]*station
}

func newStationList() *stationList {
	return &stationList{stations: make(map[string]*station)}
}

func (l *stationList) Observe(addr string) {
	if addr == "" {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.stations[addr]
	if !ok {
		s = &station{Addr: addr}
		l.stations[addr] = s
	}
	s.LastSeen = time.Now()
	s.Frames++
}

func (l *stationList) SetSSID(addr, ssid string) {
	if addr == "" || ssid == "" {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.stations[addr]
	if !ok {
		s = &station{Addr: addr}
		l.stations[addr] = s
	}
	s.SSID = ssid
}

// Snapshot returns the stations sorted by address for stable display.
func (l *stationList) Snapshot() []station {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]station, 0, len(l.stations))
	for _, s := range l.stations {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Addr < out[j].Addr })
	return out
}
