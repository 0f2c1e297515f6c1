package service

import (
	"context"
	"time"

	"erc20_indexer/internal/app/port"
	"erc20_indexer/internal/app/view"
	"erc20_indexer/internal/domain/entity"
	"erc20_indexer/internal/pkg/metrics"
)

// StateDispatcher applies page events to a single session's state.
type StateDispatcher interface {
	Dispatch(e view.Event) view.State
}

// QueryService runs the validate, fetch and render pipeline.
type QueryService struct {
	validator port.AddressValidator
	fetcher   port.BalanceFetcher
	logger    port.Logger
	timeout   time.Duration
}

// NewQueryService creates a QueryService. timeout bounds queries submitted
// through Submit; Run relies on the caller's context.
func NewQueryService(validator port.AddressValidator, fetcher port.BalanceFetcher, timeout time.Duration, logger port.Logger) *QueryService {
	return &QueryService{
		validator: validator,
		fetcher:   fetcher,
		logger:    logger,
		timeout:   timeout,
	}
}

// Run validates input and, if it names a usable address, fetches and renders
// its balances. A rejected input is not an error: the outcome's Address
// carries the failure and no balances are requested.
func (s *QueryService) Run(ctx context.Context, input string) (*entity.QueryOutcome, error) {
	addr := s.validator.Validate(ctx, input)
	if !addr.Valid() {
		metrics.QueriesTotal.WithLabelValues("invalid_input").Inc()
		return &entity.QueryOutcome{Address: addr}, nil
	}

	result, err := s.fetcher.Fetch(ctx, addr.Address)
	if err != nil {
		metrics.QueriesTotal.WithLabelValues("fetch_failed").Inc()
		return &entity.QueryOutcome{Address: addr}, err
	}

	metrics.QueriesTotal.WithLabelValues("ok").Inc()
	return &entity.QueryOutcome{Address: addr, Cards: view.RenderCards(result)}, nil
}

// Submit starts a query for input on behalf of a page session and returns
// its sequence number. The query runs in the background and reports back
// through d; a completion for a query that has since been superseded is
// dropped by the reducer.
func (s *QueryService) Submit(d StateDispatcher, input string) uint64 {
	seq := d.Dispatch(view.QueryStarted{Input: input}).QuerySeq

	go func() {
		ctx := context.Background()
		if s.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}

		var event view.Event
		outcome, err := s.Run(ctx, input)
		switch {
		case err != nil:
			s.logger.Warn("Query failed", "seq", seq, "error", err)
			event = view.QueryFailed{Seq: seq, Err: err}
		case !outcome.Address.Valid():
			event = view.ValidationFailed{Seq: seq, Failure: outcome.Address.Failure}
		default:
			event = view.QuerySucceeded{Seq: seq, Address: outcome.Address.Address, Cards: outcome.Cards}
		}

		if state := d.Dispatch(event); state.QuerySeq != seq {
			metrics.QueriesTotal.WithLabelValues("superseded").Inc()
			s.logger.Debug("Dropped completion of superseded query", "seq", seq, "current", state.QuerySeq)
		}
	}()

	return seq
}
