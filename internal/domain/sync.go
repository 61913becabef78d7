package domain

import "time"

// Reason codes for terminal per-product states. Updated products carry an
// empty reason; everything else lands in the failed or review bucket of the
// batch report keyed by one of these.
const (
	ReasonAlreadyUpdated  = "only_new_already_updated"
	ReasonNeverUpdated    = "only_updated_not_prev"
	ReasonNothingToUpdate = "nothing_to_update"
	ReasonMissingCorpus   = "missing_corpus"
	ReasonNotFound        = "not_found"
	ReasonUpdateFailed    = "update_failed"
)

// SyncResult is the outcome of processing one product. Ephemeral; aggregated
// into a BatchReport, never persisted.
type SyncResult struct {
	ProductID          string
	Name               string
	Article            string
	Updated            bool
	DescUpdated        bool
	PhotosUploaded     []string
	PhotosCount        int
	RemovedLines       []string
	DescriptionPreview string
	ReviewReason       string
	Err                string
}

// BatchReport aggregates one full pass over the catalog.
type BatchReport struct {
	Total    int
	Updated  []SyncResult
	Failed   []SyncResult
	Review   []SyncResult
	Duration time.Duration
}

// Add routes a result into its bucket.
func (r *BatchReport) Add(res SyncResult) {
	r.Total++
	switch {
	case res.ReviewReason != "" && res.ReviewReason != ReasonUpdateFailed:
		r.Review = append(r.Review, res)
	case res.Updated:
		r.Updated = append(r.Updated, res)
	default:
		r.Failed = append(r.Failed, res)
	}
}
