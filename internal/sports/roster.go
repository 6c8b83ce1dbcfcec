package sports

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jonathan/vibe-quiz/internal/fetch"
	"github.com/jonathan/vibe-quiz/internal/logger"
)

const (
	// DefaultStatsBaseURL is the public MLB stats API.
	DefaultStatsBaseURL = "https://statsapi.mlb.com"
	// DefaultRosterTTL is how long a fetched roster is reused.
	DefaultRosterTTL = 30 * time.Minute

	// SourceAPI marks rosters fetched from the stats API.
	SourceAPI = "api"
	// SourceFallback marks curated rosters.
	SourceFallback = "fallback"

	fallbackWarning = "Using cached roster data - may not reflect most recent roster changes"
)

// Player is one roster entry.
type Player struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Position     string `json:"position"`
	PositionName string `json:"position_name,omitempty"`
	JerseyNumber string `json:"jersey_number,omitempty"`
}

// Roster is a team's player list and where it came from.
type Roster struct {
	Team      TeamInfo  `json:"team"`
	Players   []Player  `json:"players"`
	Source    string    `json:"source"`
	Cached    bool      `json:"cached"`
	Warning   string    `json:"warning,omitempty"`
	FetchedAt time.Time `json:"fetched_at"`
}

func (r Roster) clone() Roster {
	players := make([]Player, len(r.Players))
	copy(players, r.Players)
	r.Players = players
	return r
}

// RosterService fetches rosters with caching, request collapsing and a curated fallback.
type RosterService struct {
	baseURL string
	cache   Cache
	ttl     time.Duration
	opts    *fetch.Options
	log     *logger.Logger
	now     func() time.Time
	group   singleflight.Group
}

// RosterOption configures a RosterService.
type RosterOption func(*RosterService)

// WithBaseURL points the service at a different stats API host.
func WithBaseURL(u string) RosterOption {
	return func(s *RosterService) {
		if u != "" {
			s.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithCache replaces the default in-memory cache.
func WithCache(c Cache) RosterOption {
	return func(s *RosterService) {
		if c != nil {
			s.cache = c
		}
	}
}

// WithTTL sets how long fetched rosters are cached. Fallback rosters keep half of it.
func WithTTL(ttl time.Duration) RosterOption {
	return func(s *RosterService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithFetchOptions sets HTTP options for stats API calls.
func WithFetchOptions(opts *fetch.Options) RosterOption {
	return func(s *RosterService) {
		if opts != nil {
			s.opts = opts
		}
	}
}

// WithRosterLogger sets the service logger.
func WithRosterLogger(l *logger.Logger) RosterOption {
	return func(s *RosterService) {
		if l != nil {
			s.log = l
		}
	}
}

// NewRosterService creates a RosterService with a memory cache and the public API.
func NewRosterService(opts ...RosterOption) *RosterService {
	s := &RosterService{
		baseURL: DefaultStatsBaseURL,
		cache:   NewMemoryCache(),
		ttl:     DefaultRosterTTL,
		opts:    fetch.DefaultOptions(),
		log:     logger.Nop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetRoster returns the roster for a team slug or any query ResolveTeam understands.
// Stats API failures are not errors: the curated fallback is returned instead.
func (s *RosterService) GetRoster(ctx context.Context, teamID string) (*Roster, error) {
	team, ok := TeamBySlug(teamID)
	if !ok {
		var err error
		if team, err = ResolveTeamOrError(teamID); err != nil {
			return nil, err
		}
	}
	return s.GetTeamRoster(ctx, team)
}

// GetTeamRoster returns the roster for a resolved team.
func (s *RosterService) GetTeamRoster(ctx context.Context, team TeamInfo) (*Roster, error) {
	cached, ok, err := s.cache.Get(ctx, team.Slug)
	if err != nil {
		s.log.Warn("roster cache read failed", "team", team.Slug, "error", err)
	}
	if ok {
		cached.Cached = true
		return cached, nil
	}

	v, err, shared := s.group.Do(team.Slug, func() (interface{}, error) {
		return s.load(ctx, team), nil
	})
	if err != nil {
		return nil, err
	}
	r := v.(*Roster).clone()
	if shared {
		s.log.Debug("roster request collapsed", "team", team.Slug)
	}
	return &r, nil
}

// load fetches from the stats API, falling back to curated data, and caches the result.
func (s *RosterService) load(ctx context.Context, team TeamInfo) *Roster {
	players, err := s.fetchRoster(ctx, team)
	if err == nil {
		r := &Roster{Team: team, Players: players, Source: SourceAPI, FetchedAt: s.now()}
		s.store(ctx, team.Slug, r, s.ttl)
		return r
	}

	s.log.Warn("roster fetch failed, using fallback", "team", team.Name, "error", err)
	r := &Roster{
		Team:      team,
		Players:   fallbackPlayers(team.Slug),
		Source:    SourceFallback,
		Warning:   fallbackWarning,
		FetchedAt: s.now(),
	}
	s.store(ctx, team.Slug, r, s.ttl/2)
	return r
}

func (s *RosterService) store(ctx context.Context, slug string, r *Roster, ttl time.Duration) {
	if err := s.cache.Set(ctx, slug, r, ttl); err != nil {
		s.log.Warn("roster cache write failed", "team", slug, "error", err)
	}
}

// ClearCache drops every cached roster.
func (s *RosterService) ClearCache(ctx context.Context) error {
	return s.cache.Clear(ctx)
}

type mlbRosterResponse struct {
	Roster []struct {
		Person struct {
			ID        int    `json:"id"`
			FullName  string `json:"fullName"`
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
		} `json:"person"`
		JerseyNumber string `json:"jerseyNumber"`
		Position     struct {
			Abbreviation string `json:"abbreviation"`
		} `json:"position"`
	} `json:"roster"`
}

func (s *RosterService) fetchRoster(ctx context.Context, team TeamInfo) ([]Player, error) {
	url := fmt.Sprintf("%s/api/v1/teams/%d/roster/active", s.baseURL, team.MLBID)

	var payload mlbRosterResponse
	if err := fetch.JSON(ctx, url, s.opts, &payload); err != nil {
		return nil, &RosterError{Team: team.Slug, Message: "stats API request failed", Cause: err}
	}
	if payload.Roster == nil {
		return nil, &RosterError{Team: team.Slug, Message: "invalid roster data"}
	}

	players := make([]Player, 0, len(payload.Roster))
	for _, entry := range payload.Roster {
		first, last := entry.Person.FirstName, entry.Person.LastName
		if first == "" || last == "" {
			parts := strings.SplitN(entry.Person.FullName, " ", 2)
			if first == "" {
				first = parts[0]
			}
			if last == "" && len(parts) > 1 {
				last = parts[1]
			}
		}
		players = append(players, Player{
			ID:           entry.Person.ID,
			Name:         entry.Person.FullName,
			FirstName:    first,
			LastName:     last,
			Position:     entry.Position.Abbreviation,
			PositionName: PositionName(entry.Position.Abbreviation),
			JerseyNumber: entry.JerseyNumber,
		})
	}
	return players, nil
}
