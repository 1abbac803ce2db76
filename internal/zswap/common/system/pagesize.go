// Package system exposes the host properties zswapstat depends on.
package system

import "golang.org/x/sys/unix"

// PageSizer reports the size in bytes of one memory page.
type PageSizer interface {
	PageSize() int64
}

// HostPageSizer queries the running kernel.
type HostPageSizer struct{}

func (HostPageSizer) PageSize() int64 {
	return int64(unix.Getpagesize())
}

// FixedPageSizer always reports the same page size.
type FixedPageSizer int64

func (f FixedPageSizer) PageSize() int64 {
	return int64(f)
}
