package live

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/foodwatch/foodwatch-api/dashboard"
	"github.com/foodwatch/foodwatch-api/schema"
)

const (
	sessionLogPrefix = "live-session"

	fetchErrorMessage = "failed to fetch records"
)

// Conn is the part of a websocket connection a session uses
type Conn interface {
	ReadJSON(v interface{}) error
	WriteJSON(v interface{}) error
	Close() error
}

// Fetcher builds the view model of a page
type Fetcher interface {
	View(ctx context.Context, page string, p dashboard.Params) (interface{}, error)
}

// Request selects the page a session follows and its controls
type Request struct {
	Page string `json:"page"`
	dashboard.Params
}

type Message struct {
	Seq   uint64      `json:"seq"`
	Page  string      `json:"page"`
	View  interface{} `json:"view,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Session keeps one websocket client up to date with the page it asked for.
// Each request and each relevant change triggers a full re-fetch; results of
// fetches overtaken by a newer one are dropped.
type Session struct {
	ID string

	// ErrorMessage turns a failed fetch into the text sent to the client.
	// Without it every failure reads as a generic fetch error.
	ErrorMessage func(error) string

	conn    Conn
	hub     *Hub
	fetcher Fetcher
	seq     dashboard.Sequencer
	refresh chan struct{}

	sync.Mutex
	request     *Request
	unsubscribe func()
}

func NewSession(conn Conn, hub *Hub, fetcher Fetcher) *Session {
	return &Session{
		ID:      uuid.New().String(),
		conn:    conn,
		hub:     hub,
		fetcher: fetcher,
		refresh: make(chan struct{}, 1),
	}
}

// Serve blocks until the client goes away or ctx is done. The connection is
// closed on return.
func (s *Session) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup

	log.WithField("prefix", sessionLogPrefix).Infof("session %s opened", s.ID)

	wg.Add(2)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		// unblocks the reader
		s.conn.Close()
	}()
	go func() {
		defer wg.Done()
		s.refreshLoop(ctx, &wg)
	}()

	err := s.readLoop(ctx)

	cancel()
	s.Lock()
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
	s.Unlock()
	wg.Wait()

	log.WithField("prefix", sessionLogPrefix).Infof("session %s closed", s.ID)
	return err
}

func (s *Session) readLoop(ctx context.Context) error {
	for {
		var req Request
		if err := s.conn.ReadJSON(&req); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		req.Page = strings.ToLower(strings.TrimSpace(req.Page))
		tables, err := dashboard.Tables(req.Page)
		if err != nil {
			s.send(Message{Seq: s.seq.Next(), Page: req.Page, Error: err.Error()})
			continue
		}

		s.follow(&req, tables)
		s.trigger(schema.ChangeEvent{})
	}
}

// follow switches the session to req and re-registers its change callback
func (s *Session) follow(req *Request, tables []string) {
	s.Lock()
	defer s.Unlock()

	if s.unsubscribe != nil {
		s.unsubscribe()
	}
	s.request = req
	s.unsubscribe = s.hub.Subscribe(tables, s.trigger)
}

func (s *Session) current() *Request {
	s.Lock()
	defer s.Unlock()

	return s.request
}

// trigger asks for a re-fetch. Pending triggers collapse into one.
func (s *Session) trigger(schema.ChangeEvent) {
	select {
	case s.refresh <- struct{}{}:
	default:
	}
}

func (s *Session) refreshLoop(ctx context.Context, wg *sync.WaitGroup) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.refresh:
			req := s.current()
			if req == nil {
				continue
			}

			seq := s.seq.Next()
			wg.Add(1)
			go func() {
				defer wg.Done()
				s.fetch(ctx, seq, *req)
			}()
		}
	}
}

func (s *Session) fetch(ctx context.Context, seq uint64, req Request) {
	view, err := s.fetcher.View(ctx, req.Page, req.Params)
	if ctx.Err() != nil {
		return
	}

	msg := Message{Seq: seq, Page: req.Page, View: view}
	if err != nil {
		log.WithField("prefix", sessionLogPrefix).WithError(err).Errorf("session %s fetch %s", s.ID, req.Page)
		msg.View = nil
		msg.Error = s.errorMessage(err)
	}
	s.send(msg)
}

func (s *Session) errorMessage(err error) string {
	if s.ErrorMessage == nil {
		return fetchErrorMessage
	}
	return s.ErrorMessage(err)
}

// send writes msg unless a newer message went out already. Writes are
// serialized by the sequencer.
func (s *Session) send(msg Message) {
	applied := s.seq.Apply(msg.Seq, func() {
		if err := s.conn.WriteJSON(msg); err != nil {
			log.WithField("prefix", sessionLogPrefix).WithError(err).Warnf("session %s write", s.ID)
		}
	})

	if !applied {
		log.WithField("prefix", sessionLogPrefix).Debugf("session %s drop stale result %d", s.ID, msg.Seq)
	}
}
