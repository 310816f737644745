// Package logtail reads the tail of taqvim's own log file.
//
// The terminal UI cannot log to the screen it draws on, so it writes to the
// configured log file instead. Tail returns the newest entries of that file,
// optionally filtered by level, and Colorize renders one entry for the
// "taqvim logs" command.
//
// Both zap encodings are understood: the console encoding (tab separated
// time, level, caller, message and a JSON object of fields) and the JSON
// encoding. Lines that match neither are kept as info-level entries with
// only Raw set, so nothing is silently hidden.
//
// Tail keeps at most n entries in a ring buffer while scanning, so memory
// stays bounded by n regardless of the file size. A missing file yields no
// entries and no error.
package logtail
