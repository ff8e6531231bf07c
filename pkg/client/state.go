package client

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/limbo/timelog/pkg/entity"
	"golang.org/x/sync/errgroup"
)

type ActionType string

const (
	ActionSetLoading      ActionType = "SET_LOADING"
	ActionSetError        ActionType = "SET_ERROR"
	ActionSetLogs         ActionType = "SET_LOGS"
	ActionSetDayLogs      ActionType = "SET_DAY_LOGS"
	ActionSetSelectedDate ActionType = "SET_SELECTED_DATE"
	ActionLogAdded        ActionType = "LOG_ADDED"
	ActionLogUpdated      ActionType = "LOG_UPDATED"
	ActionLogDeleted      ActionType = "LOG_DELETED"
	ActionSetDayStats     ActionType = "SET_DAY_STATS"
	ActionSetDashboard    ActionType = "SET_DASHBOARD"
	ActionSetOverview     ActionType = "SET_OVERVIEW"
)

// Action is one state transition. Payload type depends on Type, use the
// constructors below to build actions.
type Action struct {
	Type    ActionType
	Payload any
}

func SetLoading(loading bool) Action { return Action{Type: ActionSetLoading, Payload: loading} }

// SetError records a failure message. An empty message clears the error.
func SetError(msg string) Action { return Action{Type: ActionSetError, Payload: msg} }

func SetLogs(logs []*entity.LogEntry) Action { return Action{Type: ActionSetLogs, Payload: logs} }

func SetDayLogs(logs []*entity.LogEntry) Action { return Action{Type: ActionSetDayLogs, Payload: logs} }

func SetSelectedDate(day string) Action { return Action{Type: ActionSetSelectedDate, Payload: day} }

func LogAdded(l *entity.LogEntry) Action { return Action{Type: ActionLogAdded, Payload: l} }

func LogUpdated(l *entity.LogEntry) Action { return Action{Type: ActionLogUpdated, Payload: l} }

func LogDeleted(id uuid.UUID) Action { return Action{Type: ActionLogDeleted, Payload: id} }

func SetDayStats(stats DayStats) Action { return Action{Type: ActionSetDayStats, Payload: stats} }

func SetDashboard(d *entity.Dashboard) Action { return Action{Type: ActionSetDashboard, Payload: d} }

func SetOverview(ov *entity.StatsOverview) Action { return Action{Type: ActionSetOverview, Payload: ov} }

type DayStats struct {
	TotalMinutes    int
	TotalEntries    int
	ActivitySummary []entity.ActivitySummary
}

// State is what a front end renders. Values are treated as immutable:
// Reduce never modifies the slices of the state it is given.
type State struct {
	Logs         []*entity.LogEntry
	DayLogs      []*entity.LogEntry
	SelectedDate string
	Loading      bool
	Error        string
	DayStats     DayStats
	Dashboard    *entity.Dashboard
	Overview     *entity.StatsOverview
}

func replaceByID(logs []*entity.LogEntry, l *entity.LogEntry) []*entity.LogEntry {
	result := make([]*entity.LogEntry, len(logs))
	for i, old := range logs {
		if old.ID == l.ID {
			result[i] = l
		} else {
			result[i] = old
		}
	}
	return result
}

func withoutID(logs []*entity.LogEntry, id uuid.UUID) []*entity.LogEntry {
	return slices.DeleteFunc(slices.Clone(logs), func(l *entity.LogEntry) bool {
		return l.ID == id
	})
}

func prepend(logs []*entity.LogEntry, l *entity.LogEntry) []*entity.LogEntry {
	return append([]*entity.LogEntry{l}, logs...)
}

// Reduce returns the state after applying a. Unknown actions and actions with
// a payload of the wrong type leave the state unchanged.
func Reduce(s State, a Action) State {
	switch a.Type {
	case ActionSetLoading:
		if v, ok := a.Payload.(bool); ok {
			s.Loading = v
		}
	case ActionSetError:
		if v, ok := a.Payload.(string); ok {
			s.Error = v
			s.Loading = false
		}
	case ActionSetLogs:
		if v, ok := a.Payload.([]*entity.LogEntry); ok {
			s.Logs = v
			s.Loading = false
		}
	case ActionSetDayLogs:
		if v, ok := a.Payload.([]*entity.LogEntry); ok {
			s.DayLogs = v
		}
	case ActionSetSelectedDate:
		if v, ok := a.Payload.(string); ok {
			s.SelectedDate = v
		}
	case ActionLogAdded:
		if v, ok := a.Payload.(*entity.LogEntry); ok && v != nil {
			s.Logs = prepend(s.Logs, v)
			if v.Date.Format(entity.DayLayout) == s.SelectedDate {
				s.DayLogs = prepend(s.DayLogs, v)
			}
		}
	case ActionLogUpdated:
		if v, ok := a.Payload.(*entity.LogEntry); ok && v != nil {
			s.Logs = replaceByID(s.Logs, v)
			s.DayLogs = replaceByID(s.DayLogs, v)
		}
	case ActionLogDeleted:
		if v, ok := a.Payload.(uuid.UUID); ok {
			s.Logs = withoutID(s.Logs, v)
			s.DayLogs = withoutID(s.DayLogs, v)
		}
	case ActionSetDayStats:
		if v, ok := a.Payload.(DayStats); ok {
			s.DayStats = v
		}
	case ActionSetDashboard:
		if v, ok := a.Payload.(*entity.Dashboard); ok {
			s.Dashboard = v
		}
	case ActionSetOverview:
		if v, ok := a.Payload.(*entity.StatsOverview); ok {
			s.Overview = v
		}
	}
	return s
}

// Store holds the client-side state and keeps it in step with the server:
// every mutation is followed by a full re-fetch of the derived views.
type Store struct {
	mu     sync.RWMutex
	state  State
	client *Client
	query  ListParams
}

// NewStore creates a store showing selectedDate (YYYY-MM-DD) as the day view.
func NewStore(c *Client, selectedDate string) *Store {
	return &Store{
		client: c,
		state:  State{SelectedDate: selectedDate},
	}
}

// WithQuery sets the filters used whenever the logs list is re-fetched.
func (s *Store) WithQuery(q ListParams) *Store {
	s.query = q
	return s
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Store) Dispatch(actions ...Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range actions {
		s.state = Reduce(s.state, a)
	}
}

func (s *Store) fail(err error) error {
	s.Dispatch(SetError(err.Error()))
	return err
}

// Sync re-fetches the logs list, the selected day, the dashboard and the
// overview. Views are replaced only when every fetch succeeded.
func (s *Store) Sync(ctx context.Context) error {
	day := s.State().SelectedDate
	var (
		page      *entity.LogPage
		dayLog    *entity.DayLog
		dashboard *entity.Dashboard
		overview  *entity.StatsOverview
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		page, err = s.client.ListLogs(gctx, s.query)
		return err
	})
	if day != "" {
		g.Go(func() (err error) {
			dayLog, err = s.client.DayLog(gctx, day)
			return err
		})
	}
	g.Go(func() (err error) {
		dashboard, err = s.client.Dashboard(gctx)
		return err
	})
	g.Go(func() (err error) {
		overview, err = s.client.Overview(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return s.fail(err)
	}
	actions := []Action{
		SetLogs(page.Logs),
		SetDashboard(dashboard),
		SetOverview(overview),
	}
	if dayLog != nil {
		actions = append(actions, dayActions(dayLog)...)
	}
	s.Dispatch(actions...)
	return nil
}

func dayActions(dl *entity.DayLog) []Action {
	return []Action{
		SetDayLogs(dl.Logs),
		SetDayStats(DayStats{
			TotalMinutes:    dl.DailyTotal,
			TotalEntries:    dl.TotalEntries,
			ActivitySummary: dl.ActivitySummary,
		}),
	}
}

// Load performs the initial fetch.
func (s *Store) Load(ctx context.Context) error {
	s.Dispatch(SetLoading(true))
	if err := s.Sync(ctx); err != nil {
		return err
	}
	s.Dispatch(SetLoading(false))
	return nil
}

// SelectDate switches the day view and fetches that day.
func (s *Store) SelectDate(ctx context.Context, day string) error {
	s.Dispatch(SetSelectedDate(day))
	dl, err := s.client.DayLog(ctx, day)
	if err != nil {
		return s.fail(err)
	}
	s.Dispatch(dayActions(dl)...)
	return nil
}

func (s *Store) ClearError() {
	s.Dispatch(SetError(""))
}

func (s *Store) AddLog(ctx context.Context, req CreateLogRequest) (*entity.LogEntry, error) {
	s.Dispatch(SetLoading(true))
	created, err := s.client.CreateLog(ctx, req)
	if err != nil {
		return nil, s.fail(err)
	}
	s.Dispatch(LogAdded(created))
	if err = s.Sync(ctx); err != nil {
		return created, err
	}
	s.Dispatch(SetLoading(false))
	return created, nil
}

func (s *Store) UpdateLog(ctx context.Context, id uuid.UUID, req UpdateLogRequest) (*entity.LogEntry, error) {
	s.Dispatch(SetLoading(true))
	updated, err := s.client.UpdateLog(ctx, id, req)
	if err != nil {
		return nil, s.fail(err)
	}
	s.Dispatch(LogUpdated(updated))
	if err = s.Sync(ctx); err != nil {
		return updated, err
	}
	s.Dispatch(SetLoading(false))
	return updated, nil
}

func (s *Store) DeleteLog(ctx context.Context, id uuid.UUID) error {
	s.Dispatch(SetLoading(true))
	if _, err := s.client.DeleteLog(ctx, id); err != nil {
		return s.fail(err)
	}
	s.Dispatch(LogDeleted(id))
	if err := s.Sync(ctx); err != nil {
		return err
	}
	s.Dispatch(SetLoading(false))
	return nil
}
