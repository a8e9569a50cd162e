package chat

import "time"

// Entry is one chat message that was not a board command
type Entry struct {
	Name    string
	Message string
	Color   string // Sender color as received, possibly empty or unparsable
	At      time.Time
}

// Log is a bounded chat history, oldest entries dropped first
// Not safe for concurrent use; the host loop owns it
type Log struct {
	entries  []Entry
	start    int
	count    int
	capacity int
	now      func() time.Time
}

// NewLog creates a log retaining at most capacity entries; capacity below 1 is treated as 1
func NewLog(capacity int, now func() time.Time) *Log {
	if capacity < 1 {
		capacity = 1
	}
	if now == nil {
		now = time.Now
	}
	return &Log{
		entries:  make([]Entry, capacity),
		capacity: capacity,
		now:      now,
	}
}

// AddEntry appends a message, evicting the oldest when full
func (l *Log) AddEntry(displayName, message, color string) {
	e := Entry{Name: displayName, Message: message, Color: color, At: l.now()}
	if l.count < l.capacity {
		l.entries[(l.start+l.count)%l.capacity] = e
		l.count++
		return
	}
	l.entries[l.start] = e
	l.start = (l.start + 1) % l.capacity
}

// Len returns the number of retained entries
func (l *Log) Len() int {
	return l.count
}

// Recent returns up to n of the newest entries, oldest first
func (l *Log) Recent(n int) []Entry {
	if n > l.count {
		n = l.count
	}
	if n <= 0 {
		return nil
	}
	out := make([]Entry, n)
	skip := l.count - n
	for i := range out {
		out[i] = l.entries[(l.start+skip+i)%l.capacity]
	}
	return out
}
