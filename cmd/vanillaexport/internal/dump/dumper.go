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

package dump

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rusq/fsadapter"
	"golang.org/x/time/rate"

	"github.com/forumport/vanillaexport"
)

const (
	defPageSize  = 1000
	manifestFile = "manifest.json"
)

// Progress receives the number of extracted rows.
type Progress interface {
	Describe(description string)
	Add(num int) error
}

type nopProgress struct{}

func (nopProgress) Describe(string) {}
func (nopProgress) Add(int) error   { return nil }

// Dumper extracts all entities page by page and writes each page to the
// file <entity>/<offset>.json.
type Dumper struct {
	e    *vanillaexport.Exporter
	fsa  fsadapter.FS
	page int
	lim  *rate.Limiter
	pb   Progress
	now  func() time.Time
}

// Option is the Dumper option.
type Option func(*Dumper)

// WithPageSize sets the number of rows per page.
func WithPageSize(n int) Option {
	return func(d *Dumper) {
		if n > 0 {
			d.page = n
		}
	}
}

// WithRate limits the number of page queries per second.  Zero means no
// limit.
func WithRate(perSec float64) Option {
	return func(d *Dumper) {
		if perSec > 0 {
			d.lim = rate.NewLimiter(rate.Limit(perSec), 1)
		}
	}
}

// WithProgress sets the progress reporter.
func WithProgress(p Progress) Option {
	return func(d *Dumper) {
		if p != nil {
			d.pb = p
		}
	}
}

// NewDumper creates a new Dumper that reads from e and writes to fsa.
func NewDumper(e *vanillaexport.Exporter, fsa fsadapter.FS, opts ...Option) *Dumper {
	d := &Dumper{
		e:    e,
		fsa:  fsa,
		page: defPageSize,
		lim:  rate.NewLimiter(rate.Inf, 1),
		pb:   nopProgress{},
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Stats is the per entity dump statistics.
type Stats struct {
	Rows  int   `json:"rows"`
	Pages int   `json:"pages"`
	Bytes int64 `json:"bytes"`
}

// Manifest describes the dump.  It is written to manifest.json after all
// entities are dumped.
type Manifest struct {
	ID       string                          `json:"id"`
	Created  time.Time                       `json:"created"`
	Source   Source                          `json:"source"`
	PageSize int                             `json:"page_size"`
	Entities map[vanillaexport.Entity]*Stats `json:"entities"`
}

// Source describes the source database, the credentials are omitted.
type Source struct {
	Driver   string         `json:"driver"`
	Host     string         `json:"host,omitempty"`
	Database string         `json:"database"`
	Prefix   string         `json:"prefix"`
	Custom   map[string]any `json:"custom"`
}

// Dump dumps all entities and writes the manifest.
func (d *Dumper) Dump(ctx context.Context) (*Manifest, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}
	c := d.e.Config()
	m := &Manifest{
		ID:      id.String(),
		Created: d.now().UTC(),
		Source: Source{
			Driver:   c.DriverName(),
			Database: c.Database,
			Prefix:   c.Prefix,
			Custom:   c.Custom.Map(),
		},
		PageSize: d.page,
		Entities: make(map[vanillaexport.Entity]*Stats, len(vanillaexport.AllEntities)),
	}
	if m.Source.Driver != "sqlite" {
		m.Source.Host = c.Host
	}
	for _, ent := range vanillaexport.AllEntities {
		lg := slog.With("entity", ent)
		d.pb.Describe(ent.String())
		st, err := d.dumpEntity(ctx, ent)
		if err != nil {
			return nil, err
		}
		lg.InfoContext(ctx, "entity dumped", "rows", st.Rows, "pages", st.Pages)
		m.Entities[ent] = st
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := d.fsa.WriteFile(manifestFile, data, 0o644); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}
	return m, nil
}

func (d *Dumper) dumpEntity(ctx context.Context, ent vanillaexport.Entity) (*Stats, error) {
	switch ent {
	case vanillaexport.EntityUsers:
		return dumpPages(ctx, d, ent, d.e.GetPaginatedUsers)
	case vanillaexport.EntityCategories:
		return dumpPages(ctx, d, ent, d.e.GetPaginatedCategories)
	case vanillaexport.EntityRooms:
		return dumpPages(ctx, d, ent, d.e.GetPaginatedRooms)
	case vanillaexport.EntityMessages:
		return dumpPages(ctx, d, ent, d.e.GetPaginatedMessages)
	case vanillaexport.EntityTopics:
		return dumpPages(ctx, d, ent, d.e.GetPaginatedTopics)
	case vanillaexport.EntityPosts:
		return dumpPages(ctx, d, ent, d.e.GetPaginatedPosts)
	case vanillaexport.EntityVotes:
		return dumpPages(ctx, d, ent, d.e.GetPaginatedVotes)
	case vanillaexport.EntityBookmarks:
		return dumpPages(ctx, d, ent, d.e.GetPaginatedBookmarks)
	default:
		return nil, fmt.Errorf("unknown entity: %s", ent)
	}
}

// dumpPages calls the paginated extractor fn with consecutive windows until it
// returns an empty page, and writes each page to the file named after the page
// offset.
func dumpPages[M ~map[K]V, K comparable, V any](ctx context.Context, d *Dumper, ent vanillaexport.Entity, fn func(ctx context.Context, offset, limit int) (M, error)) (*Stats, error) {
	var st Stats
	for offset := 0; ; offset += d.page {
		if err := d.lim.Wait(ctx); err != nil {
			return nil, err
		}
		rows, err := fn(ctx, offset, d.page)
		if err != nil {
			return nil, fmt.Errorf("%s at offset %d: %w", ent, offset, err)
		}
		if len(rows) == 0 {
			break
		}
		data, err := json.Marshal(rows)
		if err != nil {
			return nil, fmt.Errorf("%s at offset %d: %w", ent, offset, err)
		}
		name := path.Join(ent.String(), strconv.Itoa(offset)+".json")
		if err := d.fsa.WriteFile(name, data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", name, err)
		}
		st.Rows += len(rows)
		st.Pages++
		st.Bytes += int64(len(data))
		if err := d.pb.Add(len(rows)); err != nil {
			slog.DebugContext(ctx, "progress", "error", err)
		}
		// rows are keyed, several source rows may share a key, so a short
		// page is not necessarily the last one.
	}
	return &st, nil
}
