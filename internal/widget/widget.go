// Package widget implements the site search dropdown: it loads the index once, filters it on
// every keystroke and renders results, the empty state or the load failure into the results
// container of a Document.
package widget

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hyperjump/sitesearch/internal/loader"
	"github.com/hyperjump/sitesearch/internal/models"
	"github.com/hyperjump/sitesearch/internal/render"
	"github.com/hyperjump/sitesearch/internal/search"
	"github.com/hyperjump/sitesearch/pkg/utils"
)

// Element identifiers and the body attribute read at construction.
const (
	InputID          = "site-search-input"
	ResultsID        = "site-search-results"
	BaseURLAttribute = "data-baseurl"
	EscapeKey        = "Escape"
)

// ErrMissingElements is returned by New when the input or the results container is absent.
// The feature is simply disabled; it is not a user-facing error.
var ErrMissingElements = errors.New("search widget elements not found")

// Widget owns the index state of one document.
type Widget struct {
	id        string
	doc       Document
	input     Input
	results   Container
	inputID   string
	resultsID string
	location  string
	state     models.IndexState
	logger    *zap.Logger
}

// Option configures a Widget.
type Option func(*Widget)

// WithLogger sets the logger. Each widget logs with its own widget_id field.
func WithLogger(l *zap.Logger) Option {
	return func(w *Widget) { w.logger = l }
}

// WithElementIDs overrides the input and results container identifiers.
func WithElementIDs(inputID, resultsID string) Option {
	return func(w *Widget) {
		if inputID != "" {
			w.inputID = inputID
		}
		if resultsID != "" {
			w.resultsID = resultsID
		}
	}
}

// New binds a widget to doc and starts the single index fetch through f.
// The fetch result is applied on doc's event loop via Dispatch.
func New(ctx context.Context, doc Document, f loader.Fetcher, opts ...Option) (*Widget, error) {
	w := &Widget{
		id:        uuid.NewString(),
		doc:       doc,
		inputID:   InputID,
		resultsID: ResultsID,
		state:     models.Unloaded(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = utils.OrNop(w.logger).With(zap.String("widget_id", w.id))

	baseURL, _ := doc.BodyAttribute(BaseURLAttribute)
	w.location = loader.IndexLocation(baseURL)

	input, hasInput := doc.Input(w.inputID)
	results, hasResults := doc.Container(w.resultsID)
	if !hasInput || !hasResults {
		w.logger.Debug("search widget disabled",
			zap.Bool("has_input", hasInput),
			zap.Bool("has_results", hasResults))
		return nil, ErrMissingElements
	}
	w.input = input
	w.results = results

	w.state = models.Loading()
	w.logger.Debug("loading search index", zap.String("location", w.location))
	pending := loader.Load(ctx, f, w.location)
	go func() {
		res := <-pending
		doc.Dispatch(func() { w.applyLoad(res) })
	}()

	doc.OnInput(w.HandleInput)
	doc.OnClick(w.HandleClick)
	doc.OnKey(w.HandleKey)
	return w, nil
}

// ID returns the widget instance id used in logs.
func (w *Widget) ID() string {
	return w.id
}

// Location returns the index location derived from the base URL.
func (w *Widget) Location() string {
	return w.location
}

// State returns the current index state.
func (w *Widget) State() models.IndexState {
	return w.state
}

func (w *Widget) applyLoad(res loader.Result) {
	if w.state.Settled() {
		return
	}
	if res.Err != nil {
		w.state = models.Failed(res.Err)
		w.logger.Warn("search index failed to load", zap.String("location", res.Location), zap.Error(res.Err))
		w.show(render.Message(render.MessageIndexFailed))
		return
	}
	w.state = models.Loaded(res.Index)
	w.logger.Info("search index loaded", zap.String("location", res.Location), zap.Int("entries", len(res.Index)))
}

// HandleInput runs the query in value against the loaded index. Before the index has
// loaded, and after a failed load, it does nothing.
func (w *Widget) HandleInput(value string) {
	index, ok := w.state.Index()
	if !ok {
		return
	}
	w.show(Evaluate(index, models.NewQuery(value)))
}

// HandleClick hides the results when target is outside both the container and the input.
func (w *Widget) HandleClick(target any) {
	if w.results.Contains(target) || w.input.Is(target) {
		return
	}
	w.results.SetHidden(true)
}

// HandleKey hides the results and blurs the input on Escape.
func (w *Widget) HandleKey(key string) {
	if key != EscapeKey {
		return
	}
	w.results.SetHidden(true)
	w.input.Blur()
}

func (w *Widget) show(f render.Fragment) {
	w.results.SetContent(f)
	w.results.SetHidden(!f.Visible())
}

// Evaluate computes the container content for q against index: hidden for queries shorter
// than search.MinQueryLength, the no-results message, or the first search.MaxResults matches.
func Evaluate(index models.SearchIndex, q models.Query) render.Fragment {
	if q.Len() < search.MinQueryLength {
		return render.Hidden()
	}
	matches := search.Filter(index, q.Normalized)
	if len(matches) == 0 {
		return render.Message(render.MessageNoResults)
	}
	return render.Results(search.Limit(matches, search.MaxResults), len(matches))
}
