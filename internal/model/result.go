package model

// Metadata holds the media description reported by the extractor. Fields
// unknown to a platform stay at documented defaults rather than being omitted.
type Metadata struct {
	Title           string
	DurationSeconds int
	Uploader        string
	ViewCount       int64
	LikeCount       int64
	UploadDate      string

	// Ext is the native container extension of the selected stream, before
	// any post-processing. Filename is the artifact path the extractor
	// reports it wrote to, when it reports one.
	Ext      string
	Filename string
}

// DownloadResult describes a resolved artifact ready for delivery.
type DownloadResult struct {
	// ArtifactPath is the path of the finished file on disk.
	ArtifactPath string

	// DisplayName is the human-readable name used when presenting the file.
	DisplayName string

	// Size is the artifact's byte size as measured on disk, not as predicted
	// by the extractor.
	Size int64

	Meta Metadata
}
