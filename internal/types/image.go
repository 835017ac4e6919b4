package types

// BucketImage is one entry of the object-storage listing. It only exists to
// resolve catalog names to download URLs.
type BucketImage struct {
	Name         string `json:"name"`
	URL          string `json:"url"`
	Size         int64  `json:"size"`
	LastModified string `json:"last_modified"`
	ETag         string `json:"etag"`
}

// OptimizedImage reports the outcome of downloading and re-encoding one
// bucket image. Savings is a human-readable percentage such as "42.5%".
type OptimizedImage struct {
	URL           string `json:"url"`
	Filename      string `json:"filename"`
	OriginalSize  int64  `json:"original_size"`
	OptimizedSize int64  `json:"optimized_size"`
	Savings       string `json:"savings"`
}
