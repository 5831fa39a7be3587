package core

// HistoryLimit bounds the per-room message window. Once exceeded the
// oldest entry is evicted, one per append.
const HistoryLimit = 100

// Ledger is the per-room bounded append-only message log, keyed by
// room id so it survives room mutation without holding room pointers.
type Ledger struct {
	entries map[string][]Message
}

// NewLedger constructs an empty history ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: make(map[string][]Message)}
}

// Init ensures an empty sequence exists for a room.
func (l *Ledger) Init(roomID string) {
	if _, ok := l.entries[roomID]; !ok {
		l.entries[roomID] = nil
	}
}

// Append pushes a message onto the room's sequence, evicting the
// oldest entry if the window bound is exceeded.
func (l *Ledger) Append(roomID string, msg Message) {
	seq := append(l.entries[roomID], msg)
	if len(seq) > HistoryLimit {
		seq = seq[1:]
	}
	l.entries[roomID] = seq
}

// Recent returns a copy of the last n messages for a room, oldest
// first. Returns fewer when the room holds fewer, never padding.
func (l *Ledger) Recent(roomID string, n int) []Message {
	seq := l.entries[roomID]
	if n > len(seq) {
		n = len(seq)
	}
	out := make([]Message, n)
	copy(out, seq[len(seq)-n:])
	return out
}

// ForRoom returns a copy of the full retained sequence for a room.
func (l *Ledger) ForRoom(roomID string) []Message {
	return l.Recent(roomID, len(l.entries[roomID]))
}
