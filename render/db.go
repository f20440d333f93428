package render

import (
	"sort"

	"github.com/snapkit/snap"
)

// DB is the spatial index for one connection kind. Connections are kept
// sorted by workspace Y so a nearest-neighbor query scans only the band
// of entries whose vertical distance is within the search radius.
type DB struct {
	conns []*Conn
}

// Len returns the number of indexed connections.
func (db *DB) Len() int { return len(db.conns) }

// Contains reports whether the connection is currently indexed.
func (db *DB) Contains(c *Conn) bool {
	return db.indexOf(c) >= 0
}

// add inserts the connection at its Y position.
func (db *DB) add(c *Conn) {
	i := db.findPosition(c.pos.Y)
	db.conns = append(db.conns, nil)
	copy(db.conns[i+1:], db.conns[i:])
	db.conns[i] = c
}

// remove deletes the connection from the index. Removing an absent
// connection is a no-op; callers maintain the membership invariant.
func (db *DB) remove(c *Conn) {
	i := db.indexOf(c)
	if i < 0 {
		return
	}
	db.conns = append(db.conns[:i], db.conns[i+1:]...)
}

// findPosition returns the insertion index for the given Y.
func (db *DB) findPosition(y float64) int {
	return sort.Search(len(db.conns), func(i int) bool {
		return db.conns[i].pos.Y >= y
	})
}

// indexOf locates the connection by identity, scanning outward from its
// Y position to tolerate equal-Y neighbors.
func (db *DB) indexOf(c *Conn) int {
	start := db.findPosition(c.pos.Y)
	for i := start; i < len(db.conns) && db.conns[i].pos.Y == c.pos.Y; i++ {
		if db.conns[i] == c {
			return i
		}
	}
	for i := start - 1; i >= 0 && db.conns[i].pos.Y == c.pos.Y; i-- {
		if db.conns[i] == c {
			return i
		}
	}
	return -1
}

// searchForClosest finds the best allowed counterpart for c within
// maxRadius, with offset applied to c's position to account for an
// in-progress drag displacement. The scan walks outward from the query
// Y in both directions, pruning as soon as the vertical distance alone
// exceeds the best radius found so far; among scanned candidates the
// minimum-distance one wins. Returns nil when nothing qualifies.
func (db *DB) searchForClosest(c *Conn, maxRadius float64, offset snap.Point) (*Conn, float64) {
	if len(db.conns) == 0 {
		return nil, maxRadius
	}
	pos := c.pos.Add(offset)

	bestRadius := maxRadius
	var best *Conn
	consider := func(cand *Conn) {
		d := cand.pos.Distance(pos)
		if d <= bestRadius && c.allowedWith(cand) {
			best = cand
			bestRadius = d
		}
	}

	start := db.findPosition(pos.Y)
	for i := start; i < len(db.conns); i++ {
		if db.conns[i].pos.Y-pos.Y > bestRadius {
			break
		}
		consider(db.conns[i])
	}
	for i := start - 1; i >= 0; i-- {
		if pos.Y-db.conns[i].pos.Y > bestRadius {
			break
		}
		consider(db.conns[i])
	}
	return best, bestRadius
}

// newDBList creates one index per connection kind.
func newDBList() map[snap.ConnKind]*DB {
	return map[snap.ConnKind]*DB{
		snap.InputValue:        {},
		snap.OutputValue:       {},
		snap.NextStatement:     {},
		snap.PreviousStatement: {},
	}
}
