package model

// Package model defines domain data structures shared across the bot: platform,
// format and quality enums, download plans and results, task lifecycle state,
// and the typed failure taxonomy reported back to the transport layer.
