// Package app is the composition root for taqvim.
//
// It loads configuration and preferences, resolves the display language,
// builds the zap logger and starts the background poller that keeps "today"
// current in a shared state.Store. Run hands that store to the terminal
// calendar browser; Serve hands it to the HTTP feed.
//
// # Startup
//
//  1. Load ~/.config/taqvim/config.toml (missing file means defaults)
//  2. Load prefs (theme, language, last viewed month); errors degrade to defaults
//  3. Pick the language: --lang flag, then prefs, then config
//  4. Build the logger (file only for the TUI, stderr otherwise)
//  5. Start the poller, then the UI or the server
//
// # Poller
//
// The poller refreshes the store every refresh_seconds and also wakes just
// after local midnight, so a browser left open overnight moves its "today"
// highlight without waiting a full interval. Day changes are logged.
//
// Fatal errors (returned from Run and Serve) are config, locale and logger
// failures plus server start errors. Nothing the poller does can fail.
package app
