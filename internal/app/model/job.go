package model

// JobResult describes one processed input of a batch.
type JobResult struct {
	OriginalFile string `json:"originalFile"`
	Service      string `json:"service"`
	Format       string `json:"format"`
	DownloadURL  string `json:"downloadUrl"`
}

// Job is a batch of inputs sharing one id. The id namespaces output storage.
type Job struct {
	ID      string      `json:"jobId"`
	Results []JobResult `json:"results"`
}
