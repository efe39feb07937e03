package notes

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	notesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jotter",
			Name:      "notes_created_total",
			Help:      "Total number of notes created",
		},
		[]string{"visibility"},
	)

	notesDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "jotter",
			Name:      "notes_deleted_total",
			Help:      "Total number of notes deleted",
		},
	)

	authorLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jotter",
			Name:      "author_lookups_total",
			Help:      "Author labels resolved for public notes, by source",
		},
		[]string{"source"},
	)
)
