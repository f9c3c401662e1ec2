package download

// Package download implements the acquisition pipeline on top of the
// extraction engine. It manages task lifecycle, per-request scratch directory
// isolation, artifact resolution after post-processing renames, and typed
// failure reporting back to the transport layer.
