// Package frontier holds the pending URLs of a single site crawl together
// with the set of URLs already scheduled, so that no URL is queued twice.
//
// A Frontier belongs to one crawl and is not meant to be shared.
package frontier

import (
	"net/url"

	"inviteCrawler/domain/adapters/FIFOqueue"
	"inviteCrawler/domain/model"
)

type Queue interface {
	Push(val interface{}) error
	Pop() (interface{}, error)
	Len() int
}

type Frontier struct {
	queue   Queue
	visited map[string]struct{}
}

// New returns a Frontier holding only base, which is marked visited.
func New(base *url.URL) *Frontier {
	f := &Frontier{
		queue:   FIFOqueue.New(),
		visited: make(map[string]struct{}),
	}
	f.Push(base)
	return f
}

// Push appends u to the tail and marks it visited. It returns false,
// leaving the frontier unchanged, if u was visited before or is nil.
func (f *Frontier) Push(u *url.URL) bool {
	if u == nil {
		return false
	}
	n := model.Normalize(u)
	key := n.String()
	if _, ok := f.visited[key]; ok {
		return false
	}
	if err := f.queue.Push(n); err != nil {
		return false
	}
	f.visited[key] = struct{}{}
	return true
}

// Pop removes the head. The visited set is not consulted.
func (f *Frontier) Pop() (*url.URL, bool) {
	v, err := f.queue.Pop()
	if err != nil || v == nil {
		return nil, false
	}
	u, ok := v.(*url.URL)
	return u, ok
}

func (f *Frontier) Len() int {
	return f.queue.Len()
}

// Seen reports whether u has ever been pushed.
func (f *Frontier) Seen(u *url.URL) bool {
	if u == nil {
		return false
	}
	_, ok := f.visited[model.Key(u)]
	return ok
}
