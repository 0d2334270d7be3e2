// Package watch runs a handler for deck layout files as they are created or
// rewritten in a directory.
//
// Events are debounced per file: a path is handed to the handler only once
// no event has arrived for it within the debounce window. Files whose
// content fingerprint has not changed since the last run are skipped, so an
// editor touching a file without modifying it does not trigger a rerun.
package watch
