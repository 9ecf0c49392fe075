package mock

import (
	"context"

	"github.com/fwojciec/shopgrep"
)

var _ shopgrep.URLFrontier = (*URLFrontier)(nil)

// URLFrontier is a mock implementation of shopgrep.URLFrontier.
type URLFrontier struct {
	PushFn func(link shopgrep.DiscoveredLink) bool
	PopFn  func() (shopgrep.DiscoveredLink, bool)
	LenFn  func() int
	SeenFn func(url string) bool
}

func (f *URLFrontier) Push(link shopgrep.DiscoveredLink) bool {
	return f.PushFn(link)
}

func (f *URLFrontier) Pop() (shopgrep.DiscoveredLink, bool) {
	return f.PopFn()
}

func (f *URLFrontier) Len() int {
	return f.LenFn()
}

func (f *URLFrontier) Seen(url string) bool {
	return f.SeenFn(url)
}

var _ shopgrep.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of shopgrep.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, domain)
}
