package extract

import (
	"iter"

	"github.com/GabrielNunesIT/openapi-table/internal/domain"
)

// Operations yields one operation per (path, verb) pair of the document, in
// document order. Keys that are not a supported HTTP method are skipped.
// The sequence can be ranged over any number of times.
func Operations(doc *domain.Document) iter.Seq[domain.Operation] {
	return func(yield func(domain.Operation) bool) {
		if doc == nil {
			return
		}

		for _, item := range doc.Paths {
			for _, entry := range item.Methods {
				method, ok := domain.ParseMethod(entry.Key)
				if !ok {
					continue
				}

				op := entry.Operation
				op.Method = method
				op.Path = item.Path

				if !yield(op) {
					return
				}
			}
		}
	}
}
