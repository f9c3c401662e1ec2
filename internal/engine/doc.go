package engine

// Package engine wraps the yt-dlp extraction engine behind a narrow interface
// so the orchestration logic stays testable with a substitute implementation.
// The real implementation translates download plans into yt-dlp flags via
// github.com/lrstanley/go-ytdlp and classifies raw engine failures into the
// typed taxonomy.
