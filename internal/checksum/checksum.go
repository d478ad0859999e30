// Package checksum calculates content digests of files. A digest that cannot
// be calculated, e.g. due to a missing or unreadable file, is reported as
// unavailable instead of as an error, so that callers can treat it as a
// mismatch where a checksum was expected.
package checksum

import (
	"context"
	"encoding/hex"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
)

type osProvider interface {
	Open(name string) (*os.File, error)
}

type unixProvider interface {
	AdviseSequential(f *os.File) error
}

//nolint:containedctx
type contextReader struct {
	ctx    context.Context
	reader io.Reader
}

func (cr *contextReader) Read(p []byte) (int, error) {
	select {
	case <-cr.ctx.Done():
		return 0, context.Canceled
	default:
		return cr.reader.Read(p)
	}
}

// Handler is the principal implementation for the checksum services.
type Handler struct {
	osHandler        osProvider
	unixHandler      unixProvider
	defaultAlgorithm Algorithm
}

// NewHandler returns a pointer to a new checksum [Handler]. The given
// [Algorithm] is used for declared checksums that carry no algorithm prefix,
// an empty one falls back to [DefaultAlgorithm].
func NewHandler(osHandler osProvider, unixHandler unixProvider, defaultAlgorithm Algorithm) *Handler {
	if defaultAlgorithm == "" {
		defaultAlgorithm = DefaultAlgorithm
	}

	return &Handler{
		osHandler:        osHandler,
		unixHandler:      unixHandler,
		defaultAlgorithm: defaultAlgorithm,
	}
}

// Sum calculates the lowercase hexadecimal digest of the content at path. The
// boolean is false if the digest is unavailable, in which case the string is
// empty.
func (c *Handler) Sum(ctx context.Context, path string, algo Algorithm) (string, bool) {
	hasher, err := algo.newHash()
	if err != nil {
		slog.Warn("Checksum unavailable: unsupported algorithm",
			"path", path,
			"err", err,
		)

		return "", false
	}

	f, err := c.osHandler.Open(path)
	if err != nil {
		slog.Debug("Checksum unavailable: failed to open file",
			"path", path,
			"err", err,
		)

		return "", false
	}
	defer f.Close()

	if err := c.unixHandler.AdviseSequential(f); err != nil {
		slog.Debug("Failed to advise sequential read (continuing)",
			"path", path,
			"err", err,
		)
	}

	n, err := io.Copy(hasher, &contextReader{ctx: ctx, reader: f})
	if err != nil {
		slog.Debug("Checksum unavailable: failed to read file",
			"path", path,
			"err", err,
		)

		return "", false
	}

	sum := hex.EncodeToString(hasher.Sum(nil))

	slog.Debug("Checksummed file:",
		"path", path,
		"algorithm", string(algo),
		"size", humanize.IBytes(uint64(n)), //nolint:gosec
		"sum", sum,
	)

	return sum, true
}

// SumFor calculates the digest of the content at path in the same notation
// as the given declared checksum, so that both can be compared verbatim. A
// declared "blake3:", "xxh64:", "sha256:" or "md5:" prefix selects the
// respective [Algorithm] and is repeated in the result; any other declared
// value is compared against the default algorithm's digest.
func (c *Handler) SumFor(ctx context.Context, path string, declared string) (string, bool) {
	algo, prefixed := splitDeclared(declared)
	if !prefixed {
		return c.Sum(ctx, path, c.defaultAlgorithm)
	}

	sum, ok := c.Sum(ctx, path, algo)
	if !ok {
		return "", false
	}

	return string(algo) + prefixSeparator + sum, true
}
