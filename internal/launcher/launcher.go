package launcher

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"

	"shortcuts/internal/metrics"
	"shortcuts/internal/models"
)

// ErrNothingToOpen is returned for an open action without targets.
var ErrNothingToOpen = errors.New("no targets to open")

// Reloader re-reads the shortcut records.
type Reloader interface {
	Reload(ctx context.Context) error
}

// Launcher runs the action attached to a chosen result row.
type Launcher struct {
	opener   Opener
	reloader Reloader
}

// New creates a launcher that opens targets with opener and reloads through reloader.
func New(opener Opener, reloader Reloader) *Launcher {
	return &Launcher{opener: opener, reloader: reloader}
}

// OpenURLs opens every URL, continuing past failures.
// It returns true only if all of them opened.
func (l *Launcher) OpenURLs(ctx context.Context, urls []string) bool {
	if len(urls) == 0 {
		slog.Error("cannot open result", "error", ErrNothingToOpen)
		return false
	}

	success := true
	for _, u := range urls {
		if err := l.opener.Open(ctx, u); err != nil {
			slog.Error("cannot open url", "url", u, "error", err)
			success = false
		}
	}
	return success
}

// OpenPath opens a local file or directory.
func (l *Launcher) OpenPath(ctx context.Context, path string) bool {
	if err := l.opener.Open(ctx, path); err != nil {
		slog.Error("cannot open path", "path", path, "error", err)
		return false
	}
	return true
}

// Activate executes action. For narrow-query actions nothing is opened and the
// replacement query text is returned for the host to display.
func (l *Launcher) Activate(ctx context.Context, action models.Action) (bool, string) {
	var ok bool
	var newQuery string

	switch action.Kind {
	case models.ActionOpenURLs:
		ok = l.OpenURLs(ctx, action.URLs)
	case models.ActionOpenPath:
		ok = l.OpenPath(ctx, action.Path)
	case models.ActionNarrowQuery:
		// The host replaces its input; the launcher stays open.
		ok = true
		newQuery = action.Query
	case models.ActionReload:
		ok = true
		if err := l.reloader.Reload(ctx); err != nil {
			// Surfaced through the store's load error row.
			slog.Warn("reload finished with error", "error", err)
		}
	default:
		slog.Debug("ignoring informational row")
	}

	metrics.RecordActivation(string(action.Kind), ok)
	return ok, newQuery
}

// ActivateResult executes the primary action of row and counts the lookup
// it stands for.
func (l *Launcher) ActivateResult(ctx context.Context, row *models.Result) (bool, string) {
	ok, newQuery := l.Activate(ctx, row.Action)
	if row.Outcome != "" {
		metrics.RecordKeywordLookup(row.Keyword, row.Outcome)
	}
	return ok, newQuery
}

// ContextActions returns the secondary actions for a result row.
func ContextActions(r *models.Result) []models.ContextAction {
	if r.ContextData != "" {
		return []models.ContextAction{{
			Title:  "Open in file manager",
			Action: models.Action{Kind: models.ActionOpenPath, Path: filepath.Dir(r.ContextData)},
		}}
	}
	if r.Record == nil {
		return nil
	}

	target := r.Record.VisitTarget()
	if target == "" {
		return nil
	}
	return []models.ContextAction{{
		Title:  "Open " + r.Record.Name,
		Action: models.Action{Kind: models.ActionOpenURLs, URLs: []string{target}},
	}}
}
