package download

import "context"

// Downloader defines the interface the transport layer uses to launch
// acquisition jobs.
type Downloader interface {
	Start(ctx context.Context, req Request) <-chan Outcome
}
