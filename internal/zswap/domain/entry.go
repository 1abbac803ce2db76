package domain

// Names of the debugfs entries every report needs.
const (
	EntryPoolTotalSize = "pool_total_size"
	EntryStoredPages   = "stored_pages"
)

// Entry is one integer-valued pseudo-file read from the zswap debug directory.
type Entry struct {
	// Name is the file name, e.g. "stored_pages".
	Name string
	// Raw is the whitespace-trimmed file content as the kernel wrote it.
	Raw string
	// Value is Raw parsed as a base-10 integer.
	Value int64
}

// Counters holds the two entries the derived figures are computed from.
type Counters struct {
	// PoolTotalSize is the number of bytes used by the compressed pool.
	PoolTotalSize int64
	// StoredPages is the number of pages currently held compressed.
	StoredPages int64
}
