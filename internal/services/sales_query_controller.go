package services

import (
	"context"
	"sync"
	"time"

	"top-sales-tracker/internal/constants"
	"top-sales-tracker/internal/interfaces"
	"top-sales-tracker/internal/logger"
	"top-sales-tracker/internal/types"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Snapshot is an immutable copy of a controller's state, safe to hand to views.
type Snapshot struct {
	Selection    types.Selection
	Outcome      types.QueryOutcome
	HasTriggered bool
	// Version increases on every state change; observers use it to drop stale updates.
	Version uint64
}

// ControllerOption configures a SalesQueryController
type ControllerOption func(*SalesQueryController)

// WithQueryTimeout bounds each outbound query. Zero disables the timeout.
func WithQueryTimeout(timeout time.Duration) ControllerOption {
	return func(c *SalesQueryController) {
		c.timeout = timeout
	}
}

// SalesQueryController owns one UI session: the current selection and the outcome of the
// latest query. Selection changes never touch the outcome; TriggerQuery replaces it wholesale.
type SalesQueryController struct {
	client     interfaces.TopSalesClient
	keys       interfaces.APIKeyProvider
	normalizer *ResultNormalizer
	timeout    time.Duration

	mu           sync.Mutex
	selection    types.Selection
	outcome      types.QueryOutcome
	hasTriggered bool
	seq          uint64
	version      uint64
	listeners    map[int]func(Snapshot)
	nextListener int
}

// NewSalesQueryController creates a controller with the default selection and an idle outcome
func NewSalesQueryController(client interfaces.TopSalesClient, keys interfaces.APIKeyProvider, options ...ControllerOption) *SalesQueryController {
	c := &SalesQueryController{
		client:     client,
		keys:       keys,
		normalizer: NewResultNormalizer(),
		selection:  types.DefaultSelection(),
		outcome:    types.IdleOutcome(),
		listeners:  make(map[int]func(Snapshot)),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// SetNetwork changes the selected network.
func (c *SalesQueryController) SetNetwork(network types.Network) error {
	return c.UpdateSelection(func(s types.Selection) (types.Selection, error) {
		if !network.Valid() {
			return s, errors.Wrapf(types.ErrInvalidSelection, "unsupported network %q", network)
		}
		s.Network = network
		return s, nil
	})
}

// SetTimeframe changes the selected timeframe.
func (c *SalesQueryController) SetTimeframe(timeframe types.Timeframe) error {
	return c.UpdateSelection(func(s types.Selection) (types.Selection, error) {
		if !timeframe.Valid() {
			return s, errors.Wrapf(types.ErrInvalidSelection, "unsupported timeframe %q", timeframe)
		}
		s.Timeframe = timeframe
		return s, nil
	})
}

// SetExcludeDex changes the DEX exclusion flag.
func (c *SalesQueryController) SetExcludeDex(excludeDex bool) {
	_ = c.UpdateSelection(func(s types.Selection) (types.Selection, error) {
		s.ExcludeDex = excludeDex
		return s, nil
	})
}

// SetSelection replaces the whole selection, or nothing if any field is invalid.
func (c *SalesQueryController) SetSelection(selection types.Selection) error {
	return c.UpdateSelection(func(types.Selection) (types.Selection, error) {
		return selection, nil
	})
}

// UpdateSelection runs change against the current selection under the controller lock, so
// concurrent partial updates never overwrite each other. The selection is left untouched
// when change fails or produces an invalid selection.
func (c *SalesQueryController) UpdateSelection(change func(types.Selection) (types.Selection, error)) error {
	c.mu.Lock()
	next, err := change(c.selection)
	if err == nil {
		err = next.Validate()
	}
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.selection = next
	snapshot, listeners := c.changedLocked()
	c.mu.Unlock()

	c.notify(snapshot, listeners)
	return nil
}

// Snapshot returns the current state.
func (c *SalesQueryController) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Subscribe registers fn to be called after every state change. The returned
// function removes the subscription.
func (c *SalesQueryController) Subscribe(fn func(Snapshot)) func() {
	c.mu.Lock()
	id := c.nextListener
	c.nextListener++
	c.listeners[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// TriggerQuery runs one query for the current selection. The outcome is Loading from the
// moment of the call until the response settles. If another trigger happens meanwhile,
// this call's response is discarded and only the latest call's response is applied.
// It returns the outcome in effect when the call returns.
func (c *SalesQueryController) TriggerQuery(ctx context.Context) types.QueryOutcome {
	seq, selection, _ := c.beginQuery()
	return c.settleQuery(ctx, selection, seq)
}

// StartQuery is the asynchronous form of TriggerQuery. The outcome is already Loading when
// it returns; the returned snapshot reflects that. The channel yields the outcome in effect
// once the query settles and is then closed.
func (c *SalesQueryController) StartQuery(ctx context.Context) (Snapshot, <-chan types.QueryOutcome) {
	seq, selection, snapshot := c.beginQuery()
	done := make(chan types.QueryOutcome, 1)
	go func() {
		defer close(done)
		done <- c.settleQuery(ctx, selection, seq)
	}()
	return snapshot, done
}

func (c *SalesQueryController) beginQuery() (uint64, types.Selection, Snapshot) {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	selection := c.selection
	c.hasTriggered = true
	c.outcome = types.LoadingOutcome()
	snapshot, listeners := c.changedLocked()
	c.mu.Unlock()

	c.notify(snapshot, listeners)
	return seq, selection, snapshot
}

func (c *SalesQueryController) settleQuery(ctx context.Context, selection types.Selection, seq uint64) types.QueryOutcome {
	outcome := c.runQuery(ctx, selection, seq)

	c.mu.Lock()
	if seq != c.seq {
		current := c.outcome
		c.mu.Unlock()
		logger.Debug("Discarding response for superseded query",
			zap.Uint64("request_seq", seq),
			zap.String("chain", selection.Network.String()))
		return current
	}
	c.outcome = outcome
	snapshot, listeners := c.changedLocked()
	c.mu.Unlock()

	c.notify(snapshot, listeners)
	return outcome
}

func (c *SalesQueryController) runQuery(ctx context.Context, selection types.Selection, seq uint64) types.QueryOutcome {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	log := logger.FromContext(ctx).With(
		zap.Uint64("request_seq", seq),
		zap.String("chain", selection.Network.String()),
		zap.String("timeframe", selection.Timeframe.String()),
		zap.Bool("exclude_dex", selection.ExcludeDex),
	)

	if c.keys == nil || c.client == nil {
		log.Error("Sales query controller is missing a collaborator")
		return types.FailedOutcome(constants.MessageNoSalesFound)
	}

	apiKey, err := c.keys.APIKey(ctx)
	if err != nil {
		log.Error("Failed to obtain API key", zap.Error(err))
		return types.FailedOutcome(FailureMessage(errors.Wrap(types.ErrAuthenticationFailure, err.Error())))
	}

	resp, err := c.client.GetTopSales(ctx, apiKey, types.NewTopSalesQuery(selection))
	if err != nil {
		if errors.Is(err, types.ErrAuthenticationFailure) {
			// A rotated key should be picked up on the next trigger, not after the cache expires.
			if invalidator, ok := c.keys.(interfaces.KeyInvalidator); ok {
				invalidator.Invalidate()
			}
		}
		log.Warn("Top sales query failed", zap.Error(err))
		return types.FailedOutcome(FailureMessage(err))
	}

	var raws []types.RawSale
	if resp != nil {
		raws = resp.Results
	}
	records := c.normalizer.NormalizeAll(raws)
	log.Info("Top sales query succeeded", zap.Int("results", len(records)))
	return types.SucceededOutcome(records)
}

// FailureMessage maps an error to one of the two user facing failure messages.
func FailureMessage(err error) string {
	if errors.Is(err, types.ErrAuthenticationFailure) {
		return constants.MessageInvalidAPIKey
	}
	return constants.MessageNoSalesFound
}

func (c *SalesQueryController) snapshotLocked() Snapshot {
	return Snapshot{
		Selection:    c.selection,
		Outcome:      c.outcome,
		HasTriggered: c.hasTriggered,
		Version:      c.version,
	}
}

func (c *SalesQueryController) changedLocked() (Snapshot, []func(Snapshot)) {
	c.version++
	listeners := make([]func(Snapshot), 0, len(c.listeners))
	for _, fn := range c.listeners {
		listeners = append(listeners, fn)
	}
	return c.snapshotLocked(), listeners
}

func (c *SalesQueryController) notify(snapshot Snapshot, listeners []func(Snapshot)) {
	for _, fn := range listeners {
		fn(snapshot)
	}
}
