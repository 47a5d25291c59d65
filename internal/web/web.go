// Package web serves the world clock tiles over HTTP: an HTML page, a JSON
// snapshot endpoint and a websocket feed that pushes tiles every tick.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"

	"github.com/agent-platform/tools/worldclock/internal/clock"
	"github.com/agent-platform/tools/worldclock/internal/daynight"
	"github.com/agent-platform/tools/worldclock/internal/tile"
	"github.com/agent-platform/tools/worldclock/internal/timefmt"
)

//go:embed templates
var templateFiles embed.FS

var templates = template.Must(template.ParseFS(templateFiles, "templates/*.html"))

const writeTimeout = 5 * time.Second

// Options configures a Server.
type Options struct {
	Builder  *tile.Builder
	Clock    clockwork.Clock
	Logger   *slog.Logger
	Interval time.Duration
	// Lang is the HTML lang attribute of rendered pages.
	Lang string
}

// Server renders tiles for HTTP clients. Every websocket connection is an
// independent view with its own clock loop.
type Server struct {
	builder  *tile.Builder
	clock    clockwork.Clock
	logger   *slog.Logger
	interval time.Duration
	lang     string
	upgrader websocket.Upgrader
	views    atomic.Int64
}

// New creates a Server.
func New(opts Options) *Server {
	s := &Server{
		builder:  opts.Builder,
		clock:    opts.Clock,
		logger:   opts.Logger,
		interval: opts.Interval,
		lang:     opts.Lang,
	}
	if s.clock == nil {
		s.clock = clockwork.NewRealClock()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.interval <= 0 {
		s.interval = clock.DefaultInterval
	}
	if s.lang == "" {
		s.lang = timefmt.DefaultLocale
	}
	return s
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.logger))

	r.Get("/", s.handleIndex)
	r.Get("/api/clocks", s.handleClocks)
	r.Get("/ws", s.handleWS)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.NotFound(s.handleNotFound)
	return r
}

// ActiveViews returns the number of connected websocket views.
func (s *Server) ActiveViews() int {
	return int(s.views.Load())
}

type tileView struct {
	City     string `json:"city"`
	Country  string `json:"country"`
	Timezone string `json:"timezone"`
	Flag     string `json:"flag"`
	Time     string `json:"time"`
	Date     string `json:"date"`
	Daytime  bool   `json:"daytime"`
	Phase    string `json:"phase"`
	Glyph    string `json:"glyph"`
}

type frame struct {
	Taken time.Time  `json:"taken"`
	Tiles []tileView `json:"tiles"`
}

func (s *Server) frame(snap clock.Snapshot) frame {
	tiles := s.builder.Build(snap)
	views := make([]tileView, len(tiles))
	for i, t := range tiles {
		views[i] = tileView{
			City:     t.City,
			Country:  t.Country,
			Timezone: t.Timezone,
			Flag:     t.Flag,
			Time:     t.Time,
			Date:     t.Date,
			Daytime:  t.Phase == daynight.Day,
			Phase:    t.Phase.String(),
			Glyph:    t.Phase.Glyph(),
		}
	}
	return frame{Taken: snap.Taken(), Tiles: views}
}

// handleIndex renders the page from the empty snapshot; the websocket feed
// fills in the values.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Lang     string
		Title    string
		Subtitle string
		Tiles    []tileView
	}{
		Lang:     s.lang,
		Title:    "Relógio Mundial",
		Subtitle: "Horários ao redor do mundo",
		Tiles:    s.frame(clock.Snapshot{}).Tiles,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, "index.html", data); err != nil {
		s.logger.Error("render index", "err", err)
	}
}

func (s *Server) handleClocks(w http.ResponseWriter, r *http.Request) {
	snap := clock.Take(s.clock, s.builder.Catalog().Timezones())
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.frame(snap)); err != nil {
		s.logger.Debug("encode clocks", "err", err)
	}
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := templates.ExecuteTemplate(w, "notfound.html", struct{ Lang string }{s.lang}); err != nil {
		s.logger.Error("render not found", "err", err)
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	log := s.logger.With("view", uuid.NewString())
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	s.views.Add(1)
	defer s.views.Add(-1)
	log.Debug("view opened", "remote", r.RemoteAddr)

	// The client only ever closes; a read error ends the view.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	loop := clock.NewLoop(s.clock, s.builder.Catalog().Timezones(), func(snap clock.Snapshot) {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(s.frame(snap)); err != nil {
			log.Debug("websocket write failed", "err", err)
			cancel()
		}
	}, clock.WithInterval(s.interval), clock.WithLogger(log))

	h := loop.Start(ctx)
	<-ctx.Done()
	h.Stop()
	log.Debug("view closed")
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
