package platform

// Package platform contains filesystem glue for the download pipeline:
// scratch directory management, artifact discovery, and the cookie file
// bootstrap used on hosted deployments.
