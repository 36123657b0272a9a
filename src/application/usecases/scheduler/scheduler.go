package scheduler

import (
	"context"
	"sync"
	"time"

	"slack-delay-sender/src/domain/schedule"
	logger "slack-delay-sender/src/infrastructure/logger"

	uuid "github.com/gofrs/uuid"
	"go.uber.org/zap"
)

// DefaultSenderLabel prefixes outgoing messages when none is configured.
const DefaultSenderLabel = "Slack Delay Sender"

// EventType says what caused an Event.
type EventType string

const (
	EventInput     EventType = "input"
	EventStarted   EventType = "started"
	EventTick      EventType = "tick"
	EventFired     EventType = "fired"
	EventStopped   EventType = "stopped"
	EventCancelled EventType = "cancelled"
	EventCompleted EventType = "completed"
)

// Event is a state update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	At       time.Time
}

// Config contains runtime options for the Scheduler.
type Config struct {
	TickInterval time.Duration
	SenderLabel  string
}

// Scheduler drives a Machine with a one-tick-per-interval countdown and
// performs the dispatch when the machine fires.
type Scheduler struct {
	mu         sync.Mutex
	machine    *Machine
	dispatcher schedule.IDispatcher
	options    Config
	Logger     *logger.Logger

	// stopTick is the live ticker handle; nil whenever the phase is not Counting.
	stopTick chan struct{}
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	events   []chan Event
	closed   bool
}

// New creates a Scheduler. Call Close to release the ticker and any in-flight dispatch.
func New(dispatcher schedule.IDispatcher, options Config, loggerInstance *logger.Logger) *Scheduler {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.SenderLabel == "" {
		options.SenderLabel = DefaultSenderLabel
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		machine:    NewMachine(),
		dispatcher: dispatcher,
		options:    options,
		Logger:     loggerInstance,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Subscribe registers a new observer channel. Slow observers miss events
// rather than stall the countdown; every Event carries a full Snapshot.
func (s *Scheduler) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		close(ch)
		return ch
	}
	s.events = append(s.events, ch)
	return ch
}

// Snapshot returns the current state.
func (s *Scheduler) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.Snapshot()
}

func (s *Scheduler) SetUnit(unit schedule.Unit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.machine.SetUnit(unit)
	s.emitLocked(EventInput)
}

func (s *Scheduler) SetDelay(raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.machine.SetDelay(raw); err != nil {
		return err
	}
	s.emitLocked(EventInput)
	return nil
}

func (s *Scheduler) SetMessage(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.machine.SetMessage(message)
	s.emitLocked(EventInput)
}

func (s *Scheduler) SetWebhookURL(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.machine.SetWebhookURL(url)
	s.emitLocked(EventInput)
}

// Start begins the countdown.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSendUnavailable
	}
	if err := s.machine.Start(); err != nil {
		return err
	}

	stop := make(chan struct{})
	s.stopTick = stop
	s.wg.Add(1)
	go s.run(stop)

	s.Logger.Info("Countdown started",
		zap.Int("seconds", s.machine.Snapshot().Remaining),
		zap.String("unit", string(s.machine.Snapshot().Unit)))
	s.emitLocked(EventStarted)
	return nil
}

// Cancel stops a running countdown without dispatching.
func (s *Scheduler) Cancel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.machine.Cancel() {
		return false
	}
	s.releaseTickLocked()
	s.Logger.Info("Countdown cancelled", zap.Int("remaining", s.machine.Snapshot().Remaining))
	s.emitLocked(EventCancelled)
	return true
}

// Close tears down the ticker, cancels an in-flight dispatch, waits for both
// and closes observer channels.
func (s *Scheduler) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.releaseTickLocked()
	s.cancel()
	s.mu.Unlock()

	s.wg.Wait()

	s.mu.Lock()
	events := s.events
	s.events = nil
	s.mu.Unlock()
	for _, ch := range events {
		close(ch)
	}
}

func (s *Scheduler) run(stop chan struct{}) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if done := s.tick(stop); done {
				return
			}
		}
	}
}

// tick returns true when the ticker goroutine should exit.
func (s *Scheduler) tick(stop chan struct{}) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A handle replaced or released since this tick was scheduled is stale.
	if s.stopTick != stop {
		return true
	}

	req, fired := s.machine.Tick()
	if s.machine.Phase() == PhaseCounting {
		s.emitLocked(EventTick)
		return false
	}

	s.stopTick = nil
	if !fired {
		s.Logger.Info("Countdown reached zero with empty message or url, nothing sent")
		s.emitLocked(EventStopped)
		return true
	}

	s.emitLocked(EventFired)
	s.wg.Add(1)
	go s.dispatch(*req)
	return true
}

func (s *Scheduler) dispatch(req schedule.Request) {
	defer s.wg.Done()

	dispatchID := ""
	if u, err := uuid.NewV4(); err == nil {
		dispatchID = u.String()
	}
	s.Logger.Info("Dispatching message", zap.String("dispatchID", dispatchID), zap.Int("delaySeconds", req.DelaySeconds))

	result, err := s.dispatcher.Dispatch(s.ctx, req.Payload(s.options.SenderLabel))
	if err != nil {
		s.Logger.Error("Error sending message through relay", zap.String("dispatchID", dispatchID), zap.Error(err))
		result = TransportFailure()
	} else if !result.Success {
		s.Logger.Warn("Relay reported failure", zap.String("dispatchID", dispatchID), zap.String("error", result.ErrorMessage))
	} else {
		s.Logger.Info("Message delivered", zap.String("dispatchID", dispatchID))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.machine.Complete(result); err != nil {
		s.Logger.Error("Dispatch result dropped", zap.String("dispatchID", dispatchID), zap.Error(err))
		return
	}
	s.emitLocked(EventCompleted)
}

func (s *Scheduler) releaseTickLocked() {
	if s.stopTick != nil {
		close(s.stopTick)
		s.stopTick = nil
	}
}

func (s *Scheduler) emitLocked(eventType EventType) {
	event := Event{
		Type:     eventType,
		Snapshot: s.machine.Snapshot(),
		At:       time.Now(),
	}
	for _, ch := range s.events {
		select {
		case ch <- event:
		default:
		}
	}
}
