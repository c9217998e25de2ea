package value

import "hash/fnv"

// Table is the string intern table: an open-addressed hash table with
// linear probing that guarantees pointer-identity equality for equal
// byte content. It is the single point of StringObj allocation; nothing
// outside this file should construct a *StringObj directly.
//
// The table is a single, unsynchronized slice. Execution is strictly
// single-threaded, so there is nothing to synchronize against.
type Table struct {
	entries  []*StringObj // nil slot = empty, deleted slot = tombstone
	count    int          // live entries, excluding tombstones
	occupied int          // live entries + tombstones, for the load-factor check
}

// tombstone is a sentinel marking a deleted slot. Deleted slots are
// treated as occupied for probing (so lookups don't stop short past a
// deletion) and are reusable for insertion.
var tombstone = &StringObj{}

const initialCapacity = 8
const maxLoadFactor = 0.75

// NewTable creates an empty intern table with the minimum capacity.
func NewTable() *Table {
	return &Table{entries: make([]*StringObj, initialCapacity)}
}

// hashBytes computes the 32-bit FNV-1a hash (offset basis 2166136261,
// prime 16777619) via the standard library's FNV-32a implementation,
// rather than hand-rolling the accumulator loop.
func hashBytes(b []byte) uint32 {
	h := fnv.New32a()
	h.Write(b)
	return h.Sum32()
}

// FindByBytes probes the table by content without allocating, returning
// the canonical String and true if an equal-content entry already
// exists.
func (t *Table) FindByBytes(b []byte, hash uint32) (*StringObj, bool) {
	if len(t.entries) == 0 {
		return nil, false
	}
	mask := uint32(len(t.entries) - 1)
	slot := hash & mask

	for {
		entry := t.entries[slot]
		if entry == nil {
			return nil, false
		}
		if entry != tombstone && entry.Hash == hash && string(entry.Bytes) == string(b) {
			return entry, true
		}
		slot = (slot + 1) & mask
	}
}

// Copy returns the canonical String for b, allocating and interning a
// fresh copy of the bytes if no equal-content entry exists yet.
func (t *Table) Copy(b []byte) *StringObj {
	hash := hashBytes(b)
	if existing, ok := t.FindByBytes(b, hash); ok {
		return existing
	}
	owned := make([]byte, len(b))
	copy(owned, b)
	return t.insert(owned, hash)
}

// Take returns the canonical String for owned, taking ownership of the
// slice if it becomes the canonical copy, or discarding it (letting the
// GC reclaim it) if an equal-content entry already exists.
func (t *Table) Take(owned []byte) *StringObj {
	hash := hashBytes(owned)
	if existing, ok := t.FindByBytes(owned, hash); ok {
		return existing
	}
	return t.insert(owned, hash)
}

func (t *Table) insert(owned []byte, hash uint32) *StringObj {
	if float64(t.occupied+1) > maxLoadFactor*float64(len(t.entries)) {
		t.grow()
	}

	mask := uint32(len(t.entries) - 1)
	slot := hash & mask
	firstTombstone := -1

	for {
		entry := t.entries[slot]
		if entry == nil {
			break
		}
		if entry == tombstone && firstTombstone == -1 {
			firstTombstone = int(slot)
		}
		slot = (slot + 1) & mask
	}

	target := int(slot)
	if firstTombstone != -1 {
		target = firstTombstone
	} else {
		t.occupied++
	}

	str := &StringObj{Bytes: owned, Hash: hash}
	t.entries[target] = str
	t.count++
	return str
}

// grow doubles capacity (the slice starts at a minimum of 8) and
// rehashes every live entry into the new table. Tombstones are not
// preserved across a grow; the new table starts clean.
func (t *Table) grow() {
	oldEntries := t.entries
	t.entries = make([]*StringObj, len(oldEntries)*2)
	t.count = 0
	t.occupied = 0

	mask := uint32(len(t.entries) - 1)
	for _, entry := range oldEntries {
		if entry == nil || entry == tombstone {
			continue
		}
		slot := entry.Hash & mask
		for t.entries[slot] != nil {
			slot = (slot + 1) & mask
		}
		t.entries[slot] = entry
		t.count++
		t.occupied++
	}
}

// Len returns the number of live interned strings.
func (t *Table) Len() int {
	return t.count
}
