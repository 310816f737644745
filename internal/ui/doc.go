// Package ui is the interactive Shamsi month browser, built on Bubble Tea.
//
// The screen has three parts:
//
//   - Header: the title and today's date in the Shamsi, Gregorian and Lunar calendars
//   - Command bar: the short key bindings
//   - Month panel: a Saturday-first grid of the month under the cursor, with
//     Fridays and today highlighted, followed by the Gregorian and Lunar span
//     of the month
//
// Key presses are mapped to navigator events (previous/next month and year),
// so the cursor follows the navigator's clamping at the edges of the
// supported window. "g" opens a prompt that jumps to any year/month, "t"
// returns to today's month, "T" cycles the theme and "L" switches between
// English and Persian. Persian mirrors the grid and renders Persian digits.
//
// Today comes from the shared state.Store, which the app poller refreshes; the
// model re-reads it on a timer so an overnight session rolls over on its own.
//
// The theme, the language and the last viewed month are written to the prefs
// file when they change and on quit.
package ui
