package context

import "context"

// DataProvider pairs a cache key with its fetch, for callers that
// prefer a typed source over ad hoc key strings.
type DataProvider interface {
	Key() string
	Fetch(ctx context.Context) (any, error)
}

// GetOrFetchProvider memoizes a DataProvider through GetOrFetch.
func (rc *RequestContext) GetOrFetchProvider(provider DataProvider) (any, error) {
	return rc.GetOrFetch(provider.Key(), provider.Fetch)
}
