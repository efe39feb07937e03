package notes

import (
	"context"
	"time"

	"github.com/oliverisaac/jotter/cache"
	"github.com/oliverisaac/jotter/store"
	"github.com/oliverisaac/jotter/types"
	"github.com/sirupsen/logrus"
)

// AuthorResolver fills in Note.AuthorLabel with one lookup per page of notes
// rather than one per note.
type AuthorResolver struct {
	users store.UserStore
	cache cache.AuthorCache
	ttl   time.Duration
}

func distinctAuthors(notes []types.Note) []string {
	seen := map[string]bool{}
	ret := []string{}
	for _, n := range notes {
		if n.UserID == "" || seen[n.UserID] {
			continue
		}
		seen[n.UserID] = true
		ret = append(ret, n.UserID)
	}
	return ret
}

// Label sets AuthorLabel on every note. Authors that cannot be resolved, for
// whatever reason, are labelled Anonymous; it never fails the batch.
func (r *AuthorResolver) Label(ctx context.Context, notes []types.Note) {
	ids := distinctAuthors(notes)
	labels := r.resolve(ctx, ids)

	for i := range notes {
		label, ok := labels[notes[i].UserID]
		if !ok || label == "" {
			label = types.AnonymousAuthor
		}
		notes[i].AuthorLabel = label
	}
}

func (r *AuthorResolver) resolve(ctx context.Context, ids []string) map[string]string {
	labels := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return labels
	}

	missing := ids
	if r.cache != nil {
		cached, err := r.cache.GetAuthorLabels(ctx, ids)
		if err != nil {
			logrus.Warnf("Reading author cache: %v", err)
		}
		missing = make([]string, 0, len(ids))
		for _, id := range ids {
			if label, ok := cached[id]; ok {
				labels[id] = label
				authorLookups.WithLabelValues("cache").Inc()
			} else {
				missing = append(missing, id)
			}
		}
	}

	if len(missing) == 0 {
		return labels
	}

	found, err := r.users.LookupEmails(ctx, missing)
	if err != nil {
		logrus.Warnf("Could not look up %d note authors: %v", len(missing), err)
		authorLookups.WithLabelValues("anonymous").Add(float64(len(missing)))
		return labels
	}

	for _, id := range missing {
		if email, ok := found[id]; ok {
			labels[id] = email
			authorLookups.WithLabelValues("store").Inc()
		} else {
			logrus.Warnf("Could not find author %s", id)
			authorLookups.WithLabelValues("anonymous").Inc()
		}
	}

	if r.cache != nil && len(found) > 0 {
		if err := r.cache.SetAuthorLabels(ctx, found, r.ttl); err != nil {
			logrus.Warnf("Writing author cache: %v", err)
		}
	}
	return labels
}
