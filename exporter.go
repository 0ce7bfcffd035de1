// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package vanillaexport reads the Vanilla Forums database and converts users,
// categories, conversations, discussions, comments, kudos and bookmarks to the
// canonical representation understood by the forum import pipeline.
//
// The Exporter is created with New, which opens the connection to the
// database; each extractor issues a single query and returns the map of
// canonical entities keyed by their identifier.  Close must be called once,
// after all extractions have finished.
package vanillaexport

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/forumport/vanillaexport/internal/query"
)

//go:generate mockgen -destination internal/mocks/mock_queryer/mock_queryer.go -package mock_queryer github.com/jmoiron/sqlx QueryerContext

// Entity is the exported entity type.
type Entity string

const (
	EntityUsers      Entity = "users"
	EntityCategories Entity = "categories"
	EntityRooms      Entity = "rooms"
	EntityMessages   Entity = "messages"
	EntityTopics     Entity = "topics"
	EntityPosts      Entity = "posts"
	EntityVotes      Entity = "votes"
	EntityBookmarks  Entity = "bookmarks"
)

// AllEntities lists all entities in the order they should be imported.
var AllEntities = []Entity{
	EntityUsers,
	EntityCategories,
	EntityRooms,
	EntityMessages,
	EntityTopics,
	EntityPosts,
	EntityVotes,
	EntityBookmarks,
}

func (e Entity) String() string {
	return string(e)
}

// Exporter extracts the forum entities from the Vanilla database.  Zero value
// is not usable, must be initialised with New.
type Exporter struct {
	conn sqlx.QueryerContext // connection handle, nil once closed
	db   *sqlx.DB            // set if the connection is owned by the exporter
	qb   query.Builder
	cfg  Config
	log  *slog.Logger
	now  func() time.Time
}

// Option is the signature of the option-setting function.
type Option func(*Exporter)

// WithLogger sets the logger.  If this option is not given, slog.Default()
// is used.
func WithLogger(l *slog.Logger) Option {
	return func(e *Exporter) {
		if l != nil {
			e.log = l
		}
	}
}

// WithConn sets the connection to use instead of opening a new one.  The
// caller retains the ownership of the connection, Close will not close it.
func WithConn(conn sqlx.QueryerContext) Option {
	return func(e *Exporter) {
		e.conn = conn
	}
}

// WithClock sets the function that returns the current time.  It is used to
// capture the extraction start time, which substitutes missing timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		if now != nil {
			e.now = now
		}
	}
}

// New creates a new Exporter and opens the database connection described by
// cfg, unless the connection is given with WithConn.
func New(ctx context.Context, cfg Config, opts ...Option) (*Exporter, error) {
	e := &Exporter{
		cfg: cfg,
		log: slog.Default(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.qb = query.New(query.ForDriver(cfg.Driver), cfg.Prefix)
	e.log.DebugContext(ctx, "setup", "config", cfg)

	if e.conn != nil {
		return e, nil
	}
	db, err := sqlx.Open(cfg.DriverName(), cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// one connection for the whole run.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	e.db = db
	e.conn = db
	return e, nil
}

// Config returns the resolved configuration.
func (e *Exporter) Config() Config {
	return e.cfg
}

// Close closes the database connection.  Extractors called after Close
// return ErrNotConfigured.
func (e *Exporter) Close() error {
	e.log.Debug("teardown")
	e.conn = nil
	if e.db == nil {
		return nil
	}
	db := e.db
	e.db = nil
	return db.Close()
}

// ready returns ErrNotConfigured if there is no connection.
func (e *Exporter) ready() error {
	if e == nil || e.conn == nil {
		return ErrNotConfigured
	}
	return nil
}

// startMillis returns the extraction start time in milliseconds.
func (e *Exporter) startMillis() int64 {
	return e.now().UnixMilli()
}
