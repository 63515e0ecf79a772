package aggregation

import "receipt/domain"

const (
	maxTopTags      = 10
	maxTopLocations = 5
)

func TopTags(entries []domain.Entry) []domain.TagCount {
	counter := newRankedCounter[string]()
	for _, e := range entries {
		for _, tag := range e.Tags {
			if tag == "" {
				continue
			}
			counter.add(tag)
		}
	}

	top := counter.top(maxTopTags)
	out := make([]domain.TagCount, 0, len(top))
	for _, r := range top {
		out = append(out, domain.TagCount{Tag: r.key, Count: r.count})
	}
	return out
}

// TopLocations ranks location names. Entries without a name are ignored.
func TopLocations(entries []domain.Entry) []domain.LocationVisit {
	counter := newRankedCounter[string]()
	for _, e := range entries {
		if name := e.LocationName(); name != "" {
			counter.add(name)
		}
	}

	top := counter.top(maxTopLocations)
	out := make([]domain.LocationVisit, 0, len(top))
	for _, r := range top {
		out = append(out, domain.LocationVisit{Name: r.key, VisitCount: r.count})
	}
	return out
}
