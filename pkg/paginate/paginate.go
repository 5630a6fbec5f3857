// Package paginate builds the read side of every listing endpoint: one plan
// composes filter, search, sort, pagination and join stages and yields a
// typed page with its metadata.
package paginate

import (
	"context"
	"strconv"
	"strings"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Params is a normalized listing request.
type Params struct {
	Page     int
	Limit    int
	Query    string
	SortBy   string
	SortType Direction
}

// NewParams normalizes raw query values. Missing, non-numeric or
// non-positive page/limit fall back to defaults; limit is capped.
func NewParams(page, limit, query, sortBy, sortType string) Params {
	p := Params{
		Page:     atoiOr(page, DefaultPage),
		Limit:    atoiOr(limit, DefaultLimit),
		Query:    strings.TrimSpace(query),
		SortBy:   strings.TrimSpace(sortBy),
		SortType: Desc,
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if Direction(strings.ToLower(strings.TrimSpace(sortType))) == Asc {
		p.SortType = Asc
	}
	return p
}

func atoiOr(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return def
	}
	return n
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Page is one ordered slice of a result set plus its metadata.
type Page[T any] struct {
	Docs        []T   `json:"docs"`
	TotalDocs   int64 `json:"totalDocs"`
	Limit       int   `json:"limit"`
	Page        int   `json:"page"`
	TotalPages  int64 `json:"totalPages"`
	HasPrevPage bool  `json:"hasPrevPage"`
	HasNextPage bool  `json:"hasNextPage"`
	PrevPage    *int  `json:"prevPage"`
	NextPage    *int  `json:"nextPage"`
}

func NewPage[T any](docs []T, total int64, p Params) *Page[T] {
	if docs == nil {
		docs = make([]T, 0)
	}
	limit := int64(p.Limit)
	totalPages := (total + limit - 1) / limit
	page := &Page[T]{
		Docs:        docs,
		TotalDocs:   total,
		Limit:       p.Limit,
		Page:        p.Page,
		TotalPages:  totalPages,
		HasPrevPage: p.Page > 1,
		HasNextPage: int64(p.Page) < totalPages,
	}
	if page.HasPrevPage {
		prev := p.Page - 1
		page.PrevPage = &prev
	}
	if page.HasNextPage {
		next := p.Page + 1
		page.NextPage = &next
	}
	return page
}

// Scope is a filter or join stage.
type Scope func(*gorm.DB) *gorm.DB

// Plan describes one listing. Filters narrow the set and feed both the count
// and the page query; Joins only decorate the page query.
type Plan struct {
	Model         interface{}
	Filters       []Scope
	SearchColumns []string
	// SortColumns maps the client sort key onto a column. Keys outside the
	// map are rejected.
	SortColumns map[string]string
	Joins       []Scope
}

const (
	createdAtColumn = "created_at"
	idColumn        = "id"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (pl Plan) filtered(db *gorm.DB, p Params) *gorm.DB {
	q := db.Model(pl.Model)
	for _, f := range pl.Filters {
		q = f(q)
	}
	if p.Query != "" && len(pl.SearchColumns) > 0 {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(p.Query)) + "%"
		exprs := make([]clause.Expression, 0, len(pl.SearchColumns))
		for _, col := range pl.SearchColumns {
			exprs = append(exprs, clause.Expr{
				SQL:  "LOWER(?) LIKE ?",
				Vars: []interface{}{clause.Column{Name: col}, pattern},
			})
		}
		q = q.Where(clause.Or(exprs...))
	}
	return q
}

// order resolves the sort stage. sortType only applies to an explicit sortBy.
// The tail (created_at desc, then id desc) makes the order total, so repeated
// calls over unchanged data agree.
func (pl Plan) order(p Params) ([]clause.OrderByColumn, error) {
	cols := make([]clause.OrderByColumn, 0, 3)
	if p.SortBy != "" {
		col, ok := pl.SortColumns[p.SortBy]
		if !ok {
			return nil, errno.RequestErr.WithMessage("Unsupported sortBy: " + p.SortBy)
		}
		cols = append(cols, clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: p.SortType == Desc})
		if col == createdAtColumn {
			return append(cols, clause.OrderByColumn{Column: clause.Column{Name: idColumn}, Desc: p.SortType == Desc}), nil
		}
		if col == idColumn {
			return cols, nil
		}
	}
	return append(cols,
		clause.OrderByColumn{Column: clause.Column{Name: createdAtColumn}, Desc: true},
		clause.OrderByColumn{Column: clause.Column{Name: idColumn}, Desc: true},
	), nil
}

// Query builds the page query: filters, search, sort, offset/limit, joins.
func (pl Plan) Query(db *gorm.DB, p Params) (*gorm.DB, error) {
	cols, err := pl.order(p)
	if err != nil {
		return nil, err
	}
	q := pl.filtered(db, p).
		Order(clause.OrderBy{Columns: cols}).
		Offset(p.Offset()).
		Limit(p.Limit)
	for _, j := range pl.Joins {
		q = j(q)
	}
	return q, nil
}

// Find runs the plan. An empty result set is a page with no docs, not an error.
func Find[T any](ctx context.Context, db *gorm.DB, pl Plan, p Params) (*Page[T], error) {
	// validate the sort key before touching the store
	if _, err := pl.order(p); err != nil {
		return nil, err
	}
	var total int64
	if err := pl.filtered(db.WithContext(ctx), p).Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "count listing")
	}
	docs := make([]T, 0, p.Limit)
	if total == 0 || int64(p.Offset()) >= total {
		return NewPage(docs, total, p), nil
	}
	q, err := pl.Query(db.WithContext(ctx), p)
	if err != nil {
		return nil, err
	}
	if err := q.Find(&docs).Error; err != nil {
		return nil, errors.Wrap(err, "find listing")
	}
	return NewPage(docs, total, p), nil
}

// WithOwner joins the owner projection onto each document as a single object.
func WithOwner(field string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Preload(field, func(tx *gorm.DB) *gorm.DB {
			return tx.Select(model.OwnerColumns)
		})
	}
}

// Eq filters column = value.
func Eq(column string, value interface{}) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(clause.Eq{Column: clause.Column{Name: column}, Value: value})
	}
}
