package axml

import (
	"fmt"
)

// parseResourceMap decodes the auxiliary resource-id table: one u32 Android
// resource identifier per string-pool index. The table is retained on the
// Document for inspection but never consulted during tree assembly, since
// resource-id based value resolution needs the resource table this decoder
// deliberately does not link.
func parseResourceMap(cr *reader, hdr chunkHeader) ([]uint32, error) {
	// Skip any header bytes beyond the common 8-byte prefix.
	if err := cr.skip(int(hdr.headerSize) - chunkHeaderSize); err != nil {
		return nil, err
	}

	count := (hdr.size - uint32(hdr.headerSize)) / 4
	if int64(count)*4 > int64(cr.remaining()) {
		return nil, fmt.Errorf("%w: resource map declares %d ids but only %d bytes follow",
			ErrTruncatedInput, count, cr.remaining())
	}

	ids := make([]uint32, count)
	for i := range ids {
		id, err := cr.u32()
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}
