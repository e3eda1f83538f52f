package orm

import (
	"regexp"

	"github.com/tesserapay/ledger/errors"
)

// isBucketName limits bucket names to a small set of ascii characters so
// the prefixed keyspaces never collide.
var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// bucketPrefix returns the raw store prefix reserved for the bucket with
// the given name. Panics on invalid name as this is a programmer error.
func bucketPrefix(name string) []byte {
	if !isBucketName(name) {
		panic(errors.Wrapf(errors.ErrDatabase, "invalid bucket name %q", name))
	}
	return append([]byte(name), ':')
}

// prefixRange turns a prefix into (start, end) to create a range over all
// keys with that prefix. End is nil when the prefix is all 0xff.
func prefixRange(prefix []byte) ([]byte, []byte) {
	if len(prefix) == 0 {
		return nil, nil
	}

	// copy the prefix and update last byte
	end := make([]byte, len(prefix))
	copy(end, prefix)
	l := len(end) - 1
	end[l]++

	// wait, what if the last byte was 0xff? then we need to bump the
	// one before that, dropping trailing 0x00 bytes
	for end[l] == 0 {
		if l == 0 {
			// oh, we overflowed the whole prefix, it must be the
			// last range
			return prefix, nil
		}
		l--
		end[l]++
		end = end[:l+1]
	}
	return prefix, end
}
