package forest_test

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/forestry/forest"
	"github.com/katalvlaran/forestry/keys"
)

// record is the row shape used throughout the tests. Name distinguishes
// records that share an ID.
type record struct {
	ID     int    `yaml:"id"`
	Parent int    `yaml:"parent"`
	Name   string `yaml:"name"`
}

func recordID(r record) int     { return r.ID }
func recordParent(r record) int { return r.Parent }

// labelOf prints Name when set, otherwise the ID.
func labelOf(r record) string {
	if r.Name != "" {
		return r.Name
	}

	return strconv.Itoa(r.ID)
}

// sample returns the four-record tree (1,0) (2,1) (3,1) (4,2).
func sample() []record {
	return []record{{ID: 1}, {ID: 2, Parent: 1}, {ID: 3, Parent: 1}, {ID: 4, Parent: 2}}
}

// newEngine builds an Engine over record with sentinel 0.
func newEngine(t testing.TB, opts ...forest.Option) *forest.Engine[record, int] {
	t.Helper()
	p, err := keys.Comparable(recordID, recordParent)
	require.NoError(t, err)
	e, err := forest.New[record, int](p, opts...)
	require.NoError(t, err)

	return e
}

// ids projects records onto their IDs, never returning nil.
func ids(rs []record) []int {
	out := make([]int, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ID)
	}

	return out
}

// sortedFormat renders f with siblings ordered by label, for comparisons
// that must not depend on input order.
func sortedFormat(f forest.Forest[record]) string {
	var sortForest func(forest.Forest[record])
	sortForest = func(nodes forest.Forest[record]) {
		sort.SliceStable(nodes, func(i, j int) bool { return nodes[i].Item.ID < nodes[j].Item.ID })
		for _, n := range nodes {
			sortForest(n.Children)
		}
	}
	sortForest(f)

	return f.Format(labelOf)
}

// fixture is one testdata/*.yaml file: a record set plus expected answers.
type fixture struct {
	Name        string     `yaml:"name"`
	Records     []record   `yaml:"records"`
	Build       []treeCase `yaml:"build"`
	Reverse     []treeCase `yaml:"reverse"`
	Descendants []listCase `yaml:"descendants"`
	Ancestors   []listCase `yaml:"ancestors"`
	Roots       []listCase `yaml:"roots"`
	Leaves      []listCase `yaml:"leaves"`
}

type treeCase struct {
	Root  int    `yaml:"root"`
	Depth *int   `yaml:"depth"`
	Want  string `yaml:"want"`
	Err   string `yaml:"err"`
}

type listCase struct {
	Root  int    `yaml:"root"`
	Depth *int   `yaml:"depth"`
	Want  []int  `yaml:"want"`
	Err   string `yaml:"err"`
}

// depthOption turns an optional fixture depth into per-call options.
func depthOption(d *int) []forest.Option {
	if d == nil {
		return nil
	}

	return []forest.Option{forest.WithMaxDepth(*d)}
}

// fixtureErr maps fixture error names onto sentinel errors.
func fixtureErr(t testing.TB, name string) error {
	t.Helper()
	switch name {
	case "":
		return nil
	case "not_found":
		return forest.ErrNotFound
	case "cycle":
		return forest.ErrCycleDetected
	default:
		t.Fatalf("unknown fixture error %q", name)
		return nil
	}
}

// loadFixtures decodes every testdata/*.yaml file.
func loadFixtures(t testing.TB) []fixture {
	t.Helper()
	paths, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	out := make([]fixture, 0, len(paths))
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		var f fixture
		require.NoError(t, yaml.Unmarshal(raw, &f), path)
		if f.Records == nil {
			f.Records = []record{}
		}
		out = append(out, f)
	}

	return out
}

// mustProjection builds a record resolver with a custom sentinel.
func mustProjection(t testing.TB, sentinel int) *keys.Projection[record, int] {
	t.Helper()
	p, err := keys.Comparable(recordID, recordParent, keys.WithSentinel(sentinel))
	require.NoError(t, err)

	return p
}
