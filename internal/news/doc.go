// Package news holds the news-reading core of newsdesk: the freshness-bounded
// payload cache, the favourites list, and the headlines service that ties
// the cache to an upstream Fetcher.
//
// Payloads are opaque to the cache. ParseArticles is the only code that
// looks inside one, to offer individual articles for saving.
//
// A cache miss and a duplicate favourite are ordinary results (false), and
// storage failures on those paths are logged rather than returned, so a
// broken database degrades to "always fetch" and "not saved".
package news
