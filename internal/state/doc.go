// Package state shares the loaded deck between the background loaders and
// the UI.
//
// A single writer (the poller or file watcher) calls Store.Update with each
// load result; the UI polls Store.Revision on its own tick and takes a
// Snapshot only when the revision moved. Snapshots are deep enough copies
// that neither side can mutate the other's cards.
//
// Update semantics:
//
//	store.Update(cards, nil)  // cards replaced, Revision++ only if they differ
//	store.Update(nil, err)    // cards kept, LastError set, ConsecutiveFailures++
//
// The first successful update always bumps the revision, even for an empty
// deck, so the UI can tell "loaded, empty" from "not loaded yet".
//
// The zero Store is ready to use.
package state
