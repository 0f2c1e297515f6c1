package view

import "erc20_indexer/internal/domain/entity"

// Event is a state transition of the page.
type Event interface {
	apply(s State) State
}

// InputChanged replaces the input text. Any previously resolved address is dropped.
type InputChanged struct {
	Input string
}

// WalletConnected carries the result of a wallet connection attempt.
type WalletConnected struct {
	Connection entity.WalletConnection
}

// QueryStarted begins a new query for Input.
type QueryStarted struct {
	Input string
}

// ValidationFailed ends query Seq because the input named no usable address.
type ValidationFailed struct {
	Seq     uint64
	Failure entity.FailureReason
}

// QuerySucceeded ends query Seq with rendered cards.
type QuerySucceeded struct {
	Seq     uint64
	Address string
	Cards   []entity.TokenCard
}

// QueryFailed ends query Seq because balances or metadata could not be fetched.
type QueryFailed struct {
	Seq uint64
	Err error
}

// NotificationShown clears the pending notification once it has been rendered.
type NotificationShown struct{}

// Reduce applies e to s and returns the new state. s is not modified.
func Reduce(s State, e Event) State {
	if e == nil {
		return s
	}
	return e.apply(s)
}

func (e InputChanged) apply(s State) State {
	s.Input = e.Input
	s.ResolvedAddress = ""
	return s
}

func (e WalletConnected) apply(s State) State {
	if !e.Connection.Connected {
		return s
	}
	s.WalletConnected = true
	s.Input = e.Connection.Address
	s.ResolvedAddress = ""
	return s
}

func (e QueryStarted) apply(s State) State {
	s.QuerySeq++
	s.Input = e.Input
	s.HasQueried = false
	s.Loading = true
	s.Notification = nil
	return s
}

func (e ValidationFailed) apply(s State) State {
	if e.Seq != s.QuerySeq {
		return s
	}
	s.Loading = false
	s.ResolvedAddress = ""
	s.Cards = nil
	s.Notification = &Notification{Message: entity.InvalidAddressMessage, Position: PositionBottomRight}
	return s
}

func (e QuerySucceeded) apply(s State) State {
	if e.Seq != s.QuerySeq {
		return s
	}
	s.Loading = false
	s.HasQueried = true
	s.ResolvedAddress = e.Address
	s.Cards = e.Cards
	return s
}

func (e QueryFailed) apply(s State) State {
	if e.Seq != s.QuerySeq {
		return s
	}
	s.Loading = false
	s.Cards = nil
	s.Notification = &Notification{Message: FetchFailedMessage, Position: PositionBottomRight}
	return s
}

func (NotificationShown) apply(s State) State {
	s.Notification = nil
	return s
}
