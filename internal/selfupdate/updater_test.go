package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin amd64", "darwin", "amd64", "mathquest_Darwin_all.tar.gz", false},
		{"darwin arm64", "darwin", "arm64", "mathquest_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "mathquest_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "mathquest_Linux_arm64.tar.gz", false},
		{"linux 386", "linux", "386", "mathquest_Linux_i386.tar.gz", false},
		{"windows amd64", "windows", "amd64", "mathquest_Windows_x86_64.zip", false},
		{"windows arm64", "windows", "arm64", "mathquest_Windows_arm64.zip", false},
		{"unsupported os", "freebsd", "amd64", "", true},
		{"unsupported arch", "linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChecksums(t *testing.T) {
	t.Run("manifest", func(t *testing.T) {
		manifest := "fedc01  mathquest_Linux_x86_64.tar.gz\n89ab23  mathquest_Darwin_all.tar.gz\n"
		got := parseChecksums([]byte(manifest))
		assert.Equal(t, map[string]string{
			"mathquest_Linux_x86_64.tar.gz": "fedc01",
			"mathquest_Darwin_all.tar.gz":   "89ab23",
		}, got)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, parseChecksums(nil))
	})

	t.Run("malformed lines skipped", func(t *testing.T) {
		manifest := "fedc01  keep.tar.gz\nnoisy line without shape\n  \na  b  c\n89ab23  also.tar.gz\n"
		got := parseChecksums([]byte(manifest))
		assert.Equal(t, map[string]string{
			"keep.tar.gz": "fedc01",
			"also.tar.gz": "89ab23",
		}, got)
	})
}

func TestVerifyChecksum(t *testing.T) {
	payload := []byte("release bytes")
	sum := sha256.Sum256(payload)

	assert.NoError(t, verifyChecksum(payload, hex.EncodeToString(sum[:])))

	err := verifyChecksum(payload, strings.Repeat("0", 64))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestExtractBinary(t *testing.T) {
	content := []byte("mathquest binary payload")

	t.Run("tar.gz", func(t *testing.T) {
		archive := buildTestArchive(t, "mathquest_Linux_x86_64.tar.gz", "mathquest", content)
		got, err := extractBinary(archive, "mathquest_Linux_x86_64.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("zip", func(t *testing.T) {
		archive := buildTestArchive(t, "mathquest_Windows_x86_64.zip", "mathquest.exe", content)
		got, err := extractBinary(archive, "mathquest_Windows_x86_64.zip")
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("binary missing from archive", func(t *testing.T) {
		archive := buildTestArchive(t, "mathquest_Linux_x86_64.tar.gz", "README.md", content)
		_, err := extractBinary(archive, "mathquest_Linux_x86_64.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestApplyUpdate(t *testing.T) {
	target := filepath.Join(t.TempDir(), "mathquest")
	require.NoError(t, os.WriteFile(target, []byte("old build"), 0755))

	replacement := []byte("new build")
	sum := sha256.Sum256(replacement)
	require.NoError(t, applyUpdate(replacement, target, sum[:]))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

// releaseFixture is an httptest release backend serving one tagged release
// with the asset for the platform the test actually runs on.
type releaseFixture struct {
	tag      string
	asset    string
	archive  []byte
	manifest string
}

func newReleaseFixture(t *testing.T, tag string, binary []byte) *releaseFixture {
	t.Helper()
	asset, err := assetNameFor(runtime.GOOS, runtime.GOARCH)
	require.NoError(t, err, "test platform must have a release asset")

	binaryName := "mathquest"
	if strings.HasSuffix(asset, ".zip") {
		binaryName = "mathquest.exe"
	}
	archive := buildTestArchive(t, asset, binaryName, binary)
	sum := sha256.Sum256(archive)

	return &releaseFixture{
		tag:      tag,
		asset:    asset,
		archive:  archive,
		manifest: fmt.Sprintf("%s  %s\n", hex.EncodeToString(sum[:]), asset),
	}
}

func (f *releaseFixture) serve(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/abhisek/mathquest/releases/latest":
			fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://example.com/%s"}`, f.tag, f.tag)
		case fmt.Sprintf("/abhisek/mathquest/releases/download/%s/%s", f.tag, f.asset):
			_, _ = w.Write(f.archive)
		case fmt.Sprintf("/abhisek/mathquest/releases/download/%s/checksums.txt", f.tag):
			_, _ = w.Write([]byte(f.manifest))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestUpdate(t *testing.T) {
	binary := []byte("new mathquest binary")

	t.Run("replaces the running binary", func(t *testing.T) {
		fixture := newReleaseFixture(t, "v2.0.0", binary)
		server := fixture.serve(t)

		execPath := filepath.Join(t.TempDir(), "mathquest")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, binary, got)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("dev build", func(t *testing.T) {
		err := NewChecker().Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		fixture := newReleaseFixture(t, "v1.0.0", binary)
		server := fixture.serve(t)

		checker := NewChecker(WithBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		fixture := newReleaseFixture(t, "v2.0.0", binary)
		fixture.manifest = fmt.Sprintf("%s  %s\n", strings.Repeat("0", 64), fixture.asset)
		server := fixture.serve(t)

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("asset download failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/repos/abhisek/mathquest/releases/latest" {
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

// buildTestArchive packs a single file as tar.gz or zip depending on the
// asset's extension.
func buildTestArchive(t *testing.T, asset, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer

	if strings.HasSuffix(asset, ".zip") {
		zw := zip.NewWriter(&buf)
		f, err := zw.Create(name)
		require.NoError(t, err)
		_, err = f.Write(content)
		require.NoError(t, err)
		require.NoError(t, zw.Close())
		return buf.Bytes()
	}

	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}
