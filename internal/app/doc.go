// Package app is the composition root for coverflow.
//
// Run loads the config and prefs, opens the log file and the deck, then runs
// two goroutines under one errgroup:
//
//	follow()  keeps state.Store current
//	  ├─> file deck: watcher.Watcher (fsnotify), debounced reloads
//	  │     falls back to polling when the directory cannot be watched
//	  └─> URL deck:  poll() with exponential backoff on failures
//
//	ui.Run()  Bubble Tea program; reads store snapshots on its own tick
//
// Quitting the UI cancels the shared context so the loader stops too. Load
// failures are recorded in the store and logged; they never end the program.
package app
