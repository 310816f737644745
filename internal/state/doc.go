// Package state shares the current date between the background poller, the
// calendar browser and the HTTP server.
//
// # Overview
//
// The poller calls Store.Update on a fixed cadence with the wall clock. Update
// expands the civil date into Shamsi, Gregorian and Lunar and reports whether
// the day rolled over since the last call. Readers take Snapshot, a value copy,
// whenever they render.
//
//	Producer (poller):         Consumers (UI, server):
//	store.Update(time.Now())   store.Snapshot()
//
// # Concurrency Model
//
// Store guards its snapshot with a sync.RWMutex: Update takes the write lock,
// Snapshot the read lock. The lock is held only while copying; date conversion
// happens before the lock is taken.
//
// # Testing Considerations
//
// The zero Store is ready to use. Snapshot on a Store that was never updated
// returns a zero Snapshot with HasToday false.
package state
