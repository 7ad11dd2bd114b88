package counter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
)

var (
	ErrViewNotFound = errors.New("view not found")
)

var atxMarker = regexp.MustCompile(`^#{1,6}\s+`)

// Options configures a Service.
type Options struct {
	// Heading is markdown for the page title. It is rendered once.
	Heading string
	// TTL removes views idle for longer. Zero keeps views until closed.
	TTL time.Duration
	// SweepInterval is how often Run looks for idle views.
	SweepInterval time.Duration
}

// Service owns the live views of the process.
type Service struct {
	mu    sync.RWMutex
	views map[string]*View

	heading  string
	ttl      time.Duration
	interval time.Duration
	now      func() time.Time
	log      *slog.Logger
}

func NewService(opts Options, log *slog.Logger) (*Service, error) {
	heading, err := renderHeading(goldmark.New(), opts.Heading)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		views:    make(map[string]*View),
		heading:  heading,
		ttl:      opts.TTL,
		interval: opts.SweepInterval,
		now:      time.Now,
		log:      log,
	}, nil
}

// renderHeading converts the heading markdown to an <h1> block.
func renderHeading(md goldmark.Markdown, src string) (string, error) {
	src = strings.Join(strings.Fields(src), " ")
	if src == "" {
		return "", fmt.Errorf("heading is required")
	}
	src = atxMarker.ReplaceAllString(src, "")

	var buf bytes.Buffer
	if err := md.Convert([]byte("# "+src), &buf); err != nil {
		return "", fmt.Errorf("render heading: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// Heading returns the rendered heading HTML. It never changes.
func (s *Service) Heading() string {
	return s.heading
}

// Create starts a new view at zero
func (s *Service) Create(ctx context.Context) (State, error) {
	if err := ctx.Err(); err != nil {
		return State{}, err
	}

	now := s.now()
	v := &View{
		ID:        uuid.NewString(),
		CreatedAt: now,
	}
	v.touch(now)

	s.mu.Lock()
	s.views[v.ID] = v
	s.mu.Unlock()

	s.log.Debug("view created", "view", v.ID)
	return v.state(0), nil
}

// Get returns the current state of a view
func (s *Service) Get(ctx context.Context, id string) (State, error) {
	v, err := s.lookup(ctx, id)
	if err != nil {
		return State{}, err
	}
	return v.state(v.counter.Value()), nil
}

// Increment applies one click to a view.
func (s *Service) Increment(ctx context.Context, id string) (State, error) {
	v, err := s.lookup(ctx, id)
	if err != nil {
		return State{}, err
	}
	return v.state(v.counter.Increment()), nil
}

// Close tears a view down and discards its value.
func (s *Service) Close(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	_, ok := s.views[id]
	delete(s.views, id)
	s.mu.Unlock()

	if !ok {
		return ErrViewNotFound
	}
	s.log.Debug("view closed", "view", id)
	return nil
}

// Touch marks a view as still displayed without clicking it.
func (s *Service) Touch(ctx context.Context, id string) error {
	_, err := s.lookup(ctx, id)
	return err
}

// HeartbeatInterval is how often a displayed view should call Touch to
// stay ahead of the TTL. Zero means views never expire.
func (s *Service) HeartbeatInterval() time.Duration {
	if s.ttl <= 0 {
		return 0
	}
	return s.ttl / 2
}

// Count returns the number of live views.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.views)
}

// Sweep removes views idle longer than the TTL and reports how many went away.
func (s *Service) Sweep(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, v := range s.views {
		if now.Sub(v.idleSince()) > s.ttl {
			delete(s.views, id)
			removed++
		}
	}
	return removed
}

// Run sweeps idle views until ctx is cancelled.
func (s *Service) Run(ctx context.Context) {
	if s.ttl <= 0 || s.interval <= 0 {
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(s.now()); n > 0 {
				s.log.Info("expired idle views", "count", n, "live", s.Count())
			}
		}
	}
}

func (s *Service) lookup(ctx context.Context, id string) (*View, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	v, ok := s.views[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrViewNotFound
	}
	v.touch(s.now())
	return v, nil
}
