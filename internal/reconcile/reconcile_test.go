package reconcile_test

import (
	"context"
	"crypto/md5" //nolint:gosec
	"encoding/hex"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/desertwitch/structcheck/internal/checksum"
	"github.com/desertwitch/structcheck/internal/reconcile"
	"github.com/desertwitch/structcheck/internal/reconcile/mocks"
	"github.com/desertwitch/structcheck/internal/schema"
	"github.com/desertwitch/structcheck/internal/structure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func md5Hex(content string) string {
	sum := md5.Sum([]byte(content)) //nolint:gosec

	return hex.EncodeToString(sum[:])
}

func parse(t *testing.T, doc string) *structure.Document {
	t.Helper()

	d, err := structure.Parse([]byte(doc))
	require.NoError(t, err)

	return d
}

func newHandler(baseDir string) *reconcile.Handler {
	osOps := &schema.OS{}

	return reconcile.NewHandler(osOps, checksum.NewHandler(osOps, &schema.Unix{}, ""), baseDir)
}

func setupTree(t *testing.T) string {
	t.Helper()

	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "dir"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "a.txt"), []byte("alpha"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(base, "dir", "b.txt"), []byte("beta"), 0o600))

	return base
}

// TestReconcile_Valid tests that a matching structure yields a valid report
// with an empty issue list.
func TestReconcile_Valid(t *testing.T) {
	t.Parallel()

	base := setupTree(t)
	doc := parse(t, `{"structure": {
		"a.txt": {"type": "file", "status": "exists", "checksum": "`+md5Hex("alpha")+`"},
		"dir": {"type": "directory", "status": "exists"},
		"dir/b.txt": {"type": "file", "status": "exists", "checksum": "`+md5Hex("beta")+`"},
		"dir/nochecksum.txt": {"type": "file", "status": "absent"}
	}}`)

	report, err := newHandler(base).Reconcile(t.Context(), doc)
	require.NoError(t, err)

	assert.True(t, report.Valid)
	assert.NotNil(t, report.Issues)
	assert.Empty(t, report.Issues)
}

// TestReconcile_Missing tests that exactly one issue is reported per missing
// path, in the literal format and regardless of a declared checksum.
func TestReconcile_Missing(t *testing.T) {
	t.Parallel()

	base := setupTree(t)
	doc := parse(t, `{"structure": {
		"gone.txt": {"type": "file", "status": "exists", "checksum": "abc"},
		"gone": {"type": "directory", "status": "exists"},
		"a.txt": {"type": "file", "status": "exists"}
	}}`)

	report, err := newHandler(base).Reconcile(t.Context(), doc)
	require.NoError(t, err)

	assert.False(t, report.Valid)
	assert.Equal(t, []string{
		"file marked as exists but not found: gone.txt",
		"directory marked as exists but not found: gone",
	}, report.Issues)
}

// TestReconcile_ChecksumMismatch tests that a content mismatch is reported
// with the declared and the recomputed checksum.
func TestReconcile_ChecksumMismatch(t *testing.T) {
	t.Parallel()

	base := setupTree(t)
	doc := parse(t, `{"structure": {
		"a.txt": {"type": "file", "status": "exists", "checksum": "deadbeef"}
	}}`)

	report, err := newHandler(base).Reconcile(t.Context(), doc)
	require.NoError(t, err)

	assert.False(t, report.Valid)
	assert.Equal(t, []string{
		"Checksum mismatch for a.txt: expected deadbeef, got " + md5Hex("alpha"),
	}, report.Issues)
}

// TestReconcile_PrefixedChecksum tests that prefixed checksums are compared
// in their own algorithm.
func TestReconcile_PrefixedChecksum(t *testing.T) {
	t.Parallel()

	base := setupTree(t)
	doc := parse(t, `{"structure": {
		"a.txt": {"type": "file", "status": "exists", "checksum": "md5:`+md5Hex("alpha")+`"},
		"dir/b.txt": {"type": "file", "status": "exists", "checksum": "blake3:00"}
	}}`)

	report, err := newHandler(base).Reconcile(t.Context(), doc)
	require.NoError(t, err)

	require.Len(t, report.Issues, 1)
	assert.Contains(t, report.Issues[0], "Checksum mismatch for dir/b.txt: expected blake3:00, got blake3:")
}

// TestReconcile_DeclaredOrder tests that issues follow the declared key order
// rather than an alphabetical or filesystem order.
func TestReconcile_DeclaredOrder(t *testing.T) {
	t.Parallel()

	doc := parse(t, `{"structure": {
		"b/x": {"type": "file", "status": "exists"},
		"a/y": {"type": "file", "status": "exists"}
	}}`)

	report, err := newHandler(t.TempDir()).Reconcile(t.Context(), doc)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"file marked as exists but not found: b/x",
		"file marked as exists but not found: a/y",
	}, report.Issues)
}

// TestReconcile_Unavailable tests that an unreadable existing file is
// reported as a mismatch with the unavailable marker.
func TestReconcile_Unavailable(t *testing.T) {
	t.Parallel()

	osMock := mocks.NewOsProvider(t)
	sumMock := mocks.NewChecksumProvider(t)

	osMock.On("Stat", "/srv/locked.txt").Return(nil, nil).Once()
	sumMock.On("SumFor", mock.Anything, "/srv/locked.txt", "abc").Return("", false).Once()

	doc := parse(t, `{"structure": {"/srv/locked.txt": {"type": "file", "status": "exists", "checksum": "abc"}}}`)

	report, err := reconcile.NewHandler(osMock, sumMock, "/base").Reconcile(t.Context(), doc)
	require.NoError(t, err)

	assert.False(t, report.Valid)
	assert.Equal(t, []string{
		"Checksum mismatch for /srv/locked.txt: expected abc, got " + reconcile.UnavailableChecksum,
	}, report.Issues)
}

// TestReconcile_DirectoryDeclaredAsFile tests that a directory declared as a
// file with a checksum results in an unavailable checksum.
func TestReconcile_DirectoryDeclaredAsFile(t *testing.T) {
	t.Parallel()

	base := setupTree(t)
	doc := parse(t, `{"structure": {"dir": {"type": "file", "status": "exists", "checksum": "abc"}}}`)

	report, err := newHandler(base).Reconcile(t.Context(), doc)
	require.NoError(t, err)

	assert.Equal(t, []string{"Checksum mismatch for dir: expected abc, got null"}, report.Issues)
}

// TestReconcile_OtherStatusesExempt tests that only entries with status
// "exists" touch the filesystem.
func TestReconcile_OtherStatusesExempt(t *testing.T) {
	t.Parallel()

	osMock := mocks.NewOsProvider(t)
	sumMock := mocks.NewChecksumProvider(t)

	doc := parse(t, `{"structure": {
		"a": {"type": "file", "status": "absent", "checksum": "abc"},
		"b": {"type": "directory", "status": "planned"}
	}}`)

	report, err := reconcile.NewHandler(osMock, sumMock, "").Reconcile(t.Context(), doc)
	require.NoError(t, err)
	assert.True(t, report.Valid)

	osMock.AssertNotCalled(t, "Stat", mock.Anything)
	sumMock.AssertNotCalled(t, "SumFor", mock.Anything, mock.Anything, mock.Anything)
}

// TestReconcile_BaseDir tests that relative paths are resolved against the
// base directory while absolute paths are used as declared.
func TestReconcile_BaseDir(t *testing.T) {
	t.Parallel()

	osMock := mocks.NewOsProvider(t)
	sumMock := mocks.NewChecksumProvider(t)

	osMock.On("Stat", filepath.Join("/base", "rel")).Return(nil, nil).Once()
	osMock.On("Stat", "/abs").Return(nil, fs.ErrNotExist).Once()

	doc := parse(t, `{"structure": {
		"rel": {"type": "directory", "status": "exists"},
		"/abs": {"type": "directory", "status": "exists"}
	}}`)

	report, err := reconcile.NewHandler(osMock, sumMock, "/base").Reconcile(t.Context(), doc)
	require.NoError(t, err)

	assert.Equal(t, []string{"directory marked as exists but not found: /abs"}, report.Issues)
}

// TestReconcile_Canceled tests that a cancelled context aborts the
// reconciliation with an error.
func TestReconcile_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	doc := parse(t, `{"structure": {"a": {"type": "file", "status": "exists"}}}`)

	report, err := newHandler(t.TempDir()).Reconcile(ctx, doc)
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, report)
}
