package bot

// Package bot implements the Telegram transport: command and link routing,
// the inline quality keyboard, selection callbacks, status message editing,
// and artifact delivery. It drives the download pipeline but owns none of it.
