package viewmodel

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"github.com/mvvm-samples/post-viewer/internal/fetch"
	"github.com/mvvm-samples/post-viewer/internal/models"
)

// Fetcher is the view model's outbound port to the fetch service.
type Fetcher interface {
	FetchPosts(ctx context.Context) <-chan fetch.Result
}

// PostList owns the current batch of posts and tells the registered
// presentation surface when it changes. It never pushes data into the
// surface; the surface re-reads Posts on every notification, which is
// guaranteed to observe the new batch because the swap happens before the
// notification is dispatched.
type PostList struct {
	fetcher    Fetcher
	dispatcher *Dispatcher

	mu            sync.RWMutex
	posts         []models.Post
	onDataChanged func()
	onFetchError  func(error)

	inFlight atomic.Bool
}

// NewPostList creates a view model with an empty batch.
func NewPostList(fetcher Fetcher, dispatcher *Dispatcher) *PostList {
	return &PostList{
		fetcher:    fetcher,
		dispatcher: dispatcher,
	}
}

// SetOnDataChanged registers the surface's single data-changed callback. It
// is invoked on the dispatcher after every successful fetch, including one
// that yields an empty batch.
func (p *PostList) SetOnDataChanged(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onDataChanged = fn
}

// SetOnFetchError registers an optional error callback, invoked on the
// dispatcher when a fetch fails. A failed fetch never touches the batch and
// never fires the data-changed callback.
func (p *PostList) SetOnFetchError(fn func(error)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onFetchError = fn
}

// Posts returns the most recently fetched batch, in wire order. Callers must
// treat the returned slice as read-only.
func (p *PostList) Posts() []models.Post {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.posts
}

// FetchPosts starts one asynchronous fetch. Fetches are serialized: a call
// made while another is still outstanding is dropped, so the batch can only
// advance to the outcome of the fetch that is actually running.
func (p *PostList) FetchPosts(ctx context.Context) {
	if !p.inFlight.CompareAndSwap(false, true) {
		log.Println("Fetch already in flight, ignoring")
		return
	}

	results := p.fetcher.FetchPosts(ctx)
	go func() {
		defer p.inFlight.Store(false)

		res, ok := <-results
		if !ok {
			return
		}
		if res.Err != nil {
			log.Printf("Failed to fetch posts: %v", res.Err)
			p.notifyError(res.Err)
			return
		}

		p.mu.Lock()
		p.posts = res.Posts
		fn := p.onDataChanged
		p.mu.Unlock()

		if fn != nil {
			p.dispatcher.Dispatch(fn)
		}
	}()
}

func (p *PostList) notifyError(err error) {
	p.mu.RLock()
	fn := p.onFetchError
	p.mu.RUnlock()

	if fn != nil {
		p.dispatcher.Dispatch(func() { fn(err) })
	}
}
