package vtable

import (
	"hash/fnv"
	"strconv"

	"github.com/mitchellh/hashstructure/v2"
)

// Key is a stable identity used to match blocks, columns and surfaces
// across re-layouts. Keys do not depend on display order.
type Key uint64

// keyOf hashes a label into a Key.
func keyOf(label string) Key {
	h := fnv.New64a()
	h.Write([]byte(label))
	return Key(h.Sum64())
}

// BlockKey returns the key of the ordinary row block starting at firstRow.
func BlockKey(firstRow int) Key {
	return keyOf("block:" + strconv.Itoa(firstRow))
}

// HeaderBlockKey returns the key of the auxiliary (header) block.
func HeaderBlockKey(firstRow int) Key {
	return keyOf("header:" + strconv.Itoa(firstRow))
}

// ColumnKey returns the key of a column. An explicit name wins; otherwise
// the index into TableData.Columns identifies it.
func ColumnKey(name string, specIndex int) Key {
	if name != "" {
		return keyOf("column:" + name)
	}
	return keyOf("column#" + strconv.Itoa(specIndex))
}

// contentHash hashes arbitrary cell content for change detection.
// Values hashstructure cannot handle (funcs, channels) hash to 0, which
// callers treat as "always changed".
func contentHash(v any) uint64 {
	h, err := hashstructure.Hash(v, hashstructure.FormatV2, nil)
	if err != nil {
		return 0
	}
	return h
}
