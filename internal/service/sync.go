package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"catalog_sync/internal/config"
	"catalog_sync/internal/corpus"
	"catalog_sync/internal/domain"
	"catalog_sync/internal/resolve"
)

// Orchestrator drives one batch pass: the per-product state machine plus the
// sequential loop with pacing, pause and cancellation. One product's full
// pipeline (including its pacing delay) completes before the next begins, so
// checkpoint writes never race and each external service sees at most one
// connection.
type Orchestrator struct {
	catalog     Catalog
	corpora     CorpusProvider
	finder      MessageFinder
	photos      PhotoCollector
	desc        DescriptionSelector
	uploader    Uploader
	checkpoints CheckpointStore
	publisher   Publisher // optional
	extractor   resolve.ArticleExtractor
	gate        *Gate
	logger      *slog.Logger
	cfg         config.SyncConfig
}

func NewOrchestrator(
	catalog Catalog,
	corpora CorpusProvider,
	finder MessageFinder,
	photos PhotoCollector,
	desc DescriptionSelector,
	uploader Uploader,
	checkpoints CheckpointStore,
	publisher Publisher,
	gate *Gate,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *Orchestrator {
	return &Orchestrator{
		catalog:     catalog,
		corpora:     corpora,
		finder:      finder,
		photos:      photos,
		desc:        desc,
		uploader:    uploader,
		checkpoints: checkpoints,
		publisher:   publisher,
		extractor: resolve.ArticleExtractor{
			PreferSiteField: cfg.SKUPreferSiteField,
			TakeFirstN:      cfg.SKUTakeFirstN,
		},
		gate:   gate,
		logger: logger,
		cfg:    cfg,
	}
}

// Gate exposes the pause gate for whoever owns the run (signals, UI bridge).
func (o *Orchestrator) Gate() *Gate {
	return o.gate
}

// Run executes one full batch pass. Only listing the catalog or loading the
// checkpoint store is fatal; every per-product failure lands in the report
// and the loop continues.
func (o *Orchestrator) Run(ctx context.Context) (*domain.BatchReport, error) {
	start := time.Now()

	if err := o.checkpoints.Load(ctx); err != nil {
		return nil, fmt.Errorf("load checkpoints: %w", err)
	}

	products, err := o.catalog.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	report := &domain.BatchReport{}
	for _, rec := range products {
		if err := o.gate.Wait(ctx); err != nil {
			o.logger.Info("batch stopped", "processed", report.Total)
			break
		}

		res := o.safeProcess(ctx, rec)
		report.Add(res)
		o.publish(ctx, &res)
		o.logResult(&res)

		if err := o.pauseBetweenProducts(ctx); err != nil {
			o.logger.Info("batch stopped during pacing wait", "processed", report.Total)
			break
		}
	}

	report.Duration = time.Since(start)
	o.logReport(report)
	return report, nil
}

// safeProcess converts an unexpected per-product error into a review result
// so one bad product never aborts the batch.
func (o *Orchestrator) safeProcess(ctx context.Context, rec domain.CatalogRecord) domain.SyncResult {
	res, err := o.processProduct(ctx, rec)
	if err != nil {
		res.ReviewReason = domain.ReasonUpdateFailed
		res.Err = err.Error()
	}
	return res
}

// processProduct is the per-product state machine. Every return is a terminal
// state; the product is never retried within this batch pass.
func (o *Orchestrator) processProduct(ctx context.Context, rec domain.CatalogRecord) (domain.SyncResult, error) {
	res := domain.SyncResult{
		ProductID: rec.ID,
		Name:      rec.Name,
		Article:   o.extractor.Extract(rec),
	}

	o.logger.Info("processing product", "id", rec.ID, "name", rec.Name, "article", res.Article)

	prev := o.checkpoints.Get(rec.ID)
	wantDesc, wantPhoto := o.cfg.Wanted()
	strategy := o.cfg.UpdateStrategy

	if strategy == "only_new" && prev.Any() {
		res.ReviewReason = domain.ReasonAlreadyUpdated
		return res, nil
	}
	if strategy == "only_updated" && !prev.Any() {
		res.ReviewReason = domain.ReasonNeverUpdated
		return res, nil
	}

	if wantPhoto && o.photoSkipEligible(strategy) && rec.ImagesCount >= o.cfg.MinPhotosToSkip {
		o.logger.Info("photos skipped, catalog already has enough", "id", rec.ID, "count", rec.ImagesCount)
		wantPhoto = false
	}

	// Fine-grained resume: a flag set by an earlier run stands, except under
	// the "all" strategy which redoes everything.
	if strategy != "all" {
		if prev.Desc {
			wantDesc = false
		}
		if prev.Photo {
			wantPhoto = false
		}
	}

	if !wantDesc && !wantPhoto {
		res.ReviewReason = domain.ReasonNothingToUpdate
		return res, nil
	}

	mainMsg, err := o.findMainMessage(ctx, &res)
	if err != nil {
		return res, err
	}
	if res.ReviewReason != "" {
		return res, nil
	}
	if mainMsg == nil {
		res.ReviewReason = domain.ReasonNotFound
		return res, nil
	}

	var description string
	if wantDesc {
		descCorpus := o.corpora.Comments()
		if descCorpus == nil {
			descCorpus = o.corpora.Main()
		}
		text, removed, err := o.desc.Select(ctx, descCorpus, *mainMsg)
		if err != nil {
			return res, fmt.Errorf("select description: %w", err)
		}
		description = text
		res.RemovedLines = removed
		res.DescriptionPreview = preview(text)
	}

	var candidates []domain.PhotoCandidate
	defer func() {
		// Local downloads never outlive their product, whatever the outcome.
		for _, cand := range candidates {
			os.Remove(cand.Path)
		}
	}()

	if wantPhoto {
		candidates, err = o.collectPhotos(ctx, *mainMsg)
		if err != nil {
			return res, fmt.Errorf("collect photos: %w", err)
		}
		if len(candidates) > 0 {
			o.logger.Info("photos found", "id", rec.ID, "count", len(candidates))
		} else {
			o.logger.Info("no photos found", "id", rec.ID)
		}
	}

	return o.commit(ctx, rec, res, description, candidates, wantDesc, wantPhoto)
}

// findMainMessage resolves the corpora for the configured operation mode and
// locates the product's main message. A missing required corpus or a miss is
// reported on res, not as an error.
func (o *Orchestrator) findMainMessage(ctx context.Context, res *domain.SyncResult) (*domain.Message, error) {
	mainC := o.corpora.Main()
	commentC := o.corpora.Comments()

	if o.cfg.OperationMode == "comments" {
		if commentC == nil {
			res.ReviewReason = domain.ReasonMissingCorpus
			return nil, nil
		}
		msg, err := o.finder.Resolve(ctx, commentC, res.Article)
		if err != nil {
			return nil, fmt.Errorf("resolve main message: %w", err)
		}
		return msg, nil
	}

	// Manual mode: try the forced source first, then whatever else exists.
	order := make([]corpus.Corpus, 0, 2)
	if o.cfg.PhotoSourceForced == "main" {
		order = append(order, mainC, commentC)
	} else {
		order = append(order, commentC, mainC)
	}
	for _, c := range order {
		if c == nil {
			continue
		}
		msg, err := o.finder.Resolve(ctx, c, res.Article)
		if err != nil {
			return nil, fmt.Errorf("resolve main message: %w", err)
		}
		if msg != nil {
			return msg, nil
		}
	}
	if mainC == nil && commentC == nil {
		res.ReviewReason = domain.ReasonMissingCorpus
	}
	return nil, nil
}

// collectPhotos picks the algorithm for the configured mode and, when the
// primary corpus yields nothing, retries the opposite corpus with the
// main-first algorithm — the canonical post and its gallery sometimes live in
// different corpora.
func (o *Orchestrator) collectPhotos(ctx context.Context, main domain.Message) ([]domain.PhotoCandidate, error) {
	mainC := o.corpora.Main()
	commentC := o.corpora.Comments()

	var fetch, fallback corpus.Corpus
	var candidates []domain.PhotoCandidate
	var err error

	if o.cfg.PhotoSourceMode == "manual" && o.cfg.PhotoSourceForced == "main" {
		fetch, fallback = pick(mainC, commentC)
		candidates, err = o.photos.MainFirst(ctx, fetch, main)
	} else {
		fetch, fallback = pick(commentC, mainC)
		candidates, err = o.photos.Combined(ctx, fetch, main)
	}
	if err != nil {
		return candidates, err
	}

	if len(candidates) == 0 && fallback != nil {
		return o.photos.MainFirst(ctx, fallback, main)
	}
	return candidates, nil
}

// pick returns the preferred non-nil corpus and the other one as fallback.
func pick(preferred, other corpus.Corpus) (corpus.Corpus, corpus.Corpus) {
	if preferred == nil {
		return other, nil
	}
	if other == nil {
		return preferred, nil
	}
	return preferred, other
}

// commit uploads the candidates, builds the write payload, clears existing
// catalog images when replacing, writes, and marks the checkpoint. The
// checkpoint moves only after the catalog write is acknowledged.
func (o *Orchestrator) commit(
	ctx context.Context,
	rec domain.CatalogRecord,
	res domain.SyncResult,
	description string,
	candidates []domain.PhotoCandidate,
	wantDesc, wantPhoto bool,
) (domain.SyncResult, error) {
	var upd domain.ProductUpdate
	if wantDesc && description != "" {
		upd.Description = &description
	}

	var uploaded []string
	if wantPhoto {
		for _, cand := range candidates {
			if len(uploaded) >= o.cfg.MaxPhotos {
				break
			}
			url, err := o.uploader.Upload(ctx, cand.Path)
			if err != nil {
				if ctx.Err() != nil {
					return res, ctx.Err()
				}
				o.logger.Warn("photo abandoned", "id", rec.ID, "message_id", cand.MessageID, "error", err)
				continue
			}
			uploaded = append(uploaded, url)
			if err := sleepWithContext(ctx, o.cfg.PauseBetweenPhotos); err != nil {
				return res, err
			}
		}
		if len(uploaded) > 0 {
			images := make([]domain.ImageRef, len(uploaded))
			for i, u := range uploaded {
				images[i] = domain.ImageRef{Src: u}
			}
			upd.Images = &images
		}
	}

	res.PhotosUploaded = uploaded
	res.PhotosCount = len(uploaded)

	if upd.Empty() {
		res.ReviewReason = domain.ReasonUpdateFailed
		res.Err = "nothing to commit"
		return res, nil
	}

	for _, tag := range o.cfg.Tags {
		upd.Tags = append(upd.Tags, domain.TagRef{Name: tag})
	}

	if upd.Images != nil {
		// Replacing photos: clear the existing set first so stale images
		// never mix with the new ones. A failed clear is not fatal, the
		// write below replaces the list anyway.
		empty := []domain.ImageRef{}
		if err := o.catalog.Update(ctx, rec.ID, domain.ProductUpdate{Images: &empty}); err != nil {
			o.logger.Warn("clearing catalog images failed", "id", rec.ID, "error", err)
		}
		if err := sleepWithContext(ctx, o.cfg.PauseBetweenPhotos); err != nil {
			return res, err
		}
	}

	if err := o.catalog.Update(ctx, rec.ID, upd); err != nil {
		res.ReviewReason = domain.ReasonUpdateFailed
		res.Err = err.Error()
		return res, nil
	}

	if err := o.checkpoints.Mark(ctx, rec.ID, wantDesc, wantPhoto); err != nil {
		o.logger.Error("checkpoint write failed", "id", rec.ID, "error", err)
	}

	res.Updated = true
	res.DescUpdated = wantDesc
	return res, nil
}

func (o *Orchestrator) photoSkipEligible(strategy string) bool {
	for _, s := range o.cfg.PhotoSkipStrategies {
		if s == strategy {
			return true
		}
	}
	return false
}

// pauseBetweenProducts waits the configured pacing delay one second at a
// time, observing the gate and cancellation at each tick.
func (o *Orchestrator) pauseBetweenProducts(ctx context.Context) error {
	remaining := o.cfg.PauseBetweenItems
	for remaining > 0 {
		if err := o.gate.Wait(ctx); err != nil {
			return err
		}
		step := time.Second
		if remaining < step {
			step = remaining
		}
		if err := sleepWithContext(ctx, step); err != nil {
			return err
		}
		remaining -= step
	}
	return nil
}

func (o *Orchestrator) publish(ctx context.Context, res *domain.SyncResult) {
	if o.publisher == nil {
		return
	}
	if err := o.publisher.Publish(ctx, res); err != nil {
		o.logger.Warn("publish sync event failed", "id", res.ProductID, "error", err)
	}
}

func (o *Orchestrator) logResult(res *domain.SyncResult) {
	switch {
	case res.Updated:
		o.logger.Info("product updated",
			"id", res.ProductID,
			"photos", res.PhotosCount,
			"description", res.DescUpdated,
			"removed_lines", len(res.RemovedLines),
		)
	case res.ReviewReason != "" && res.ReviewReason != domain.ReasonUpdateFailed:
		o.logger.Info("product needs review", "id", res.ProductID, "reason", res.ReviewReason)
	default:
		o.logger.Warn("product update failed", "id", res.ProductID, "error", res.Err)
	}
}

func (o *Orchestrator) logReport(report *domain.BatchReport) {
	o.logger.Info("batch finished",
		"total", report.Total,
		"updated", len(report.Updated),
		"failed", len(report.Failed),
		"review", len(report.Review),
		"duration", report.Duration,
	)
	for _, r := range report.Failed {
		o.logger.Warn("failed", "id", r.ProductID, "name", r.Name, "error", r.Err)
	}
	for _, r := range report.Review {
		o.logger.Info("manual review", "id", r.ProductID, "name", r.Name, "reason", r.ReviewReason)
	}
}

func preview(text string) string {
	flat := strings.ReplaceAll(text, "\n", " ")
	if r := []rune(flat); len(r) > 400 {
		return string(r[:400])
	}
	return flat
}

func sleepWithContext(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
