package renamer

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/uuidify/internal/files/filesystem"
	"github.com/vvka-141/uuidify/internal/files/walker"
	"github.com/vvka-141/uuidify/internal/logging"
	"github.com/vvka-141/uuidify/internal/namegen"
	"github.com/vvka-141/uuidify/internal/ui"
	"github.com/vvka-141/uuidify/pkg/uuidify"
)

var generatedBase = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)

func newTestRenamer(approved bool) (*Renamer, *filesystem.MemoryFileSystem, *mockApprover, *bytes.Buffer) {
	mfs := filesystem.NewMemoryFileSystem("/project")
	approver := &mockApprover{approved: approved}
	var out bytes.Buffer
	r := New(Config{
		FS:        mfs,
		Generator: &sequenceGenerator{},
		Approver:  approver,
		Logger:    logging.NewConsoleLoggerWithWriter(&out, false, false),
	})
	return r, mfs, approver, &out
}

func TestNew_NilArgs(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"nil approver", Config{Logger: logging.NewNullLogger()}},
		{"nil logger", Config{Approver: &mockApprover{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Error("Expected panic")
				}
			}()
			New(tt.cfg)
		})
	}
}

func TestExtension(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"photo.jpg", ".jpg"},
		{"dir/photo.JPG", ".JPG"},
		{"archive.tar.gz", ".gz"},
		{"README", ""},
		{".bashrc", ""},
		{"dir/.env.local", ".local"},
		{"notes.", ""},
		{"a.b/c", ""},
		{"..", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Extension(tt.path))
		})
	}
}

func TestDestination(t *testing.T) {
	const name = "3fa85f64-5717-4562-b3fc-2c963f66afa6"

	tests := []struct {
		path string
		want string
	}{
		{"photo.jpg", name + ".jpg"},
		{"README", name},
		{filepath.Join("a", "b", "c.PNG"), filepath.Join("a", "b", name+".PNG")},
		{filepath.Join("a", ".bashrc"), filepath.Join("a", name)},
		{filepath.Join("a", "notes."), filepath.Join("a", name)},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Destination(tt.path, name))
		})
	}
}

func TestDestination_KeepsParentAsWritten(t *testing.T) {
	const name = "3fa85f64-5717-4562-b3fc-2c963f66afa6"

	tests := []struct {
		path string
		want string
	}{
		{"link/../f.txt", "link/../" + name + ".txt"},
		{"./a/./b.txt", "./a/./" + name + ".txt"},
		{"a//b.txt", "a//" + name + ".txt"},
		{"a/b.txt/", "a/" + name + ".txt"},
		{"/f", "/" + name},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, filepath.FromSlash(tt.want), Destination(filepath.FromSlash(tt.path), name))
		})
	}
}

// A ".." after a symlink refers to the parent of the link target, so the
// renamed file must stay next to the original, not next to the link.
func TestHandleFile_DotDotThroughSymlink(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "real", "inner"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "real", "f.txt"), []byte("f"), 0644))
	if err := os.Symlink(filepath.Join(root, "real", "inner"), filepath.Join(root, "link")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	path := root + filepath.FromSlash("/link/../f.txt")
	want := root + filepath.FromSlash("/link/../NEW.txt")
	assert.Equal(t, want, Destination(path, "NEW"))

	r := New(Config{
		Generator: &sequenceGenerator{},
		Approver:  &mockApprover{approved: true},
		Logger:    logging.NewNullLogger(),
	})
	require.NoError(t, r.HandleFile(context.Background(), path))

	entries, err := os.ReadDir(filepath.Join(root, "real"))
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"inner", "00000000-0000-4000-8000-000000000001.txt"}, names)

	rootEntries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Len(t, rootEntries, 2, "nothing may be moved into the directory holding the link")
}

func TestStem(t *testing.T) {
	assert.Equal(t, "photo", Stem("dir/photo.jpg"))
	assert.Equal(t, "README", Stem("README"))
	assert.Equal(t, ".bashrc", Stem(".bashrc"))
}

func TestHandleFile_Approved(t *testing.T) {
	r, mfs, approver, out := newTestRenamer(true)
	mfs.AddFile("photos/cat.jpg", "meow")

	err := r.HandleFile(context.Background(), "/project/photos/cat.jpg")
	require.NoError(t, err)

	want := "/project/photos/00000000-0000-4000-8000-000000000001.jpg"
	assert.Equal(t, want+"\n", out.String())
	assert.False(t, mfs.Exists("/project/photos/cat.jpg"))
	content, err := mfs.ReadFile(want)
	require.NoError(t, err)
	assert.Equal(t, "meow", string(content))

	require.Len(t, approver.requests, 1)
	assert.Equal(t, [2]string{"/project/photos/cat.jpg", want}, approver.requests[0])

	assert.Equal(t, []uuidify.RenameRecord{
		{Source: "/project/photos/cat.jpg", Destination: want, Outcome: uuidify.OutcomeRenamed},
	}, r.Records())
}

func TestHandleFile_DeclinedLeavesFileUntouched(t *testing.T) {
	r, mfs, _, out := newTestRenamer(false)
	mfs.AddFile("cat.jpg", "meow")

	err := r.HandleFile(context.Background(), "/project/cat.jpg")
	require.NoError(t, err)

	assert.Equal(t, []string{"/project/cat.jpg"}, mfs.Files())
	assert.Contains(t, out.String(), "00000000-0000-4000-8000-000000000001.jpg")
	require.Len(t, r.Records(), 1)
	assert.Equal(t, uuidify.OutcomeDeclined, r.Records()[0].Outcome)
}

func TestHandleFile_ApproverErrorPropagates(t *testing.T) {
	r, mfs, approver, _ := newTestRenamer(false)
	mfs.AddFile("cat.jpg", "meow")
	approver.err = context.Canceled

	err := r.HandleFile(context.Background(), "/project/cat.jpg")

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"/project/cat.jpg"}, mfs.Files())
	assert.Empty(t, r.Records())
}

func TestHandleFile_RenameErrorIsUnwrapped(t *testing.T) {
	r, mfs, _, _ := newTestRenamer(true)
	mfs.AddFile("cat.jpg", "meow")
	mfs.FailRename("cat.jpg", fs.ErrPermission)

	err := r.HandleFile(context.Background(), "/project/cat.jpg")

	require.Error(t, err)
	var linkErr *os.LinkError
	require.True(t, errors.As(err, &linkErr))
	assert.Equal(t, "/project/cat.jpg", linkErr.Old)
	assert.True(t, errors.Is(err, fs.ErrPermission))
	assert.Empty(t, r.Records())
}

func TestHandleFile_SkipGenerated(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/project")
	existing := "3fa85f64-5717-4562-b3fc-2c963f66afa6.png"
	mfs.AddFile(existing, "x")
	mfs.AddFile("plain.png", "y")

	approver := &mockApprover{approved: true}
	r := New(Config{
		FS:            mfs,
		Generator:     &sequenceGenerator{},
		Approver:      approver,
		Logger:        logging.NewNullLogger(),
		SkipGenerated: true,
	})

	require.NoError(t, r.HandleFile(context.Background(), "/project/"+existing))
	require.NoError(t, r.HandleFile(context.Background(), "/project/plain.png"))

	assert.True(t, mfs.Exists(existing))
	assert.False(t, mfs.Exists("plain.png"))
	require.Len(t, approver.requests, 1, "skipped files must not be prompted for")

	records := r.Records()
	require.Len(t, records, 2)
	assert.Equal(t, uuidify.OutcomeSkipped, records[0].Outcome)
	assert.Equal(t, uuidify.OutcomeRenamed, records[1].Outcome)
}

func TestHandleFile_WithoutSkipGeneratedRenamesAgain(t *testing.T) {
	r, mfs, _, _ := newTestRenamer(true)
	existing := "3fa85f64-5717-4562-b3fc-2c963f66afa6.png"
	mfs.AddFile(existing, "x")

	require.NoError(t, r.HandleFile(context.Background(), "/project/"+existing))

	assert.False(t, mfs.Exists(existing))
}

// runTree walks root with a real generator and an interactive approver fed
// from answers, returning the renamer and everything printed.
func runTree(t *testing.T, root, answers string) (*Renamer, string) {
	t.Helper()
	var out bytes.Buffer
	logger := logging.NewConsoleLoggerWithWriter(&out, false, false)
	approver := ui.NewInteractiveApproverWithIO(strings.NewReader(answers), &out, false, false)
	r := New(Config{Approver: approver, Logger: logger})

	err := walker.NewWalker(logger).Enumerate(context.Background(), root, r)
	require.NoError(t, err)
	return r, out.String()
}

func listFiles(t *testing.T, root string) []string {
	t.Helper()
	var files []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			rel, _ := filepath.Rel(root, p)
			files = append(files, filepath.ToSlash(rel))
		}
		return nil
	})
	require.NoError(t, err)
	sort.Strings(files)
	return files
}

func TestScenario_DirectoryTreeAlwaysYes(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b.png"), []byte("b"), 0644))

	r, out := runTree(t, root, "y\nyes\n")

	files := listFiles(t, root)
	require.Len(t, files, 2)
	for _, f := range files {
		dir, base := filepath.Split(f)
		stem := Stem(base)
		require.True(t, namegen.IsGeneratedName(stem), "unexpected name %q", f)
		switch dir {
		case "":
			assert.Equal(t, ".txt", Extension(base))
		case "sub/":
			assert.Equal(t, ".png", Extension(base))
		default:
			t.Errorf("file moved out of its directory: %s", f)
		}
	}

	destinationLines := 0
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if generatedBase.MatchString(filepath.Base(line)) && !strings.HasPrefix(line, "CONTINUE?") {
			destinationLines++
		}
	}
	assert.Equal(t, 2, destinationLines, "output:\n%s", out)
	assert.Len(t, r.Records(), 2)

	// the renamed content is intact
	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(root, f))
		require.NoError(t, err)
		if strings.HasSuffix(f, ".txt") {
			assert.Equal(t, "a", string(data))
		} else {
			assert.Equal(t, "b", string(data))
		}
	}
}

func TestScenario_NonexistentRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "missing")

	r, out := runTree(t, root, "")

	assert.Equal(t, "[TRACE] invalid path "+root+"\n", out)
	assert.Empty(t, r.Records())
}

func TestScenario_SingleFileWithoutExtension(t *testing.T) {
	dir := t.TempDir()
	readme := filepath.Join(dir, "README")
	require.NoError(t, os.WriteFile(readme, []byte("read me"), 0644))

	runTree(t, readme, "YES\n")

	files := listFiles(t, dir)
	require.Len(t, files, 1)
	assert.Len(t, files[0], namegen.GeneratedNameLength)
	assert.True(t, namegen.IsGeneratedName(files[0]))
}

func TestScenario_AnswerNo(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("k"), 0644))

	r, _ := runTree(t, dir, "no\n")

	assert.Equal(t, []string{"keep.txt"}, listFiles(t, dir))
	require.Len(t, r.Records(), 1)
	assert.Equal(t, uuidify.OutcomeDeclined, r.Records()[0].Outcome)
}

func TestScenario_ConsecutiveRunsProduceNewNames(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0644))

	runTree(t, dir, "y\n")
	first := listFiles(t, dir)
	runTree(t, dir, "y\n")
	second := listFiles(t, dir)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.NotEqual(t, first[0], second[0])
}

func TestHandleFile_VerboseLogsRename(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/project")
	mfs.AddFile("cat.jpg", "meow")

	var out bytes.Buffer
	r := New(Config{
		FS:        mfs,
		Generator: &sequenceGenerator{},
		Approver:  &mockApprover{approved: true},
		Logger:    logging.NewConsoleLoggerWithWriter(&out, true, false),
	})
	require.NoError(t, r.HandleFile(context.Background(), "/project/cat.jpg"))

	dest := "/project/00000000-0000-4000-8000-000000000001.jpg"
	assert.Equal(t, dest+"\n[VERBOSE] Renamed /project/cat.jpg → "+dest+"\n", out.String())
}
