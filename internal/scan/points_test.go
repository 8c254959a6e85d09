package scan

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mhollis/gridscan/internal/param"
)

// #region helpers

func axis(t *testing.T, fqn string, gen Generator) Axis {
	t.Helper()
	return Axis{
		Schema:    param.Schema{FQN: fqn, Type: "float"},
		Path:      "frag",
		Store:     param.NewFloatStore(0),
		Generator: gen,
	}
}

func linear(t *testing.T, start, stop float64, n int) Generator {
	t.Helper()
	g, err := NewLinear(start, stop, n, false)
	if err != nil {
		t.Fatalf("NewLinear: %v", err)
	}
	return g
}

func list(t *testing.T, values ...float64) Generator {
	t.Helper()
	g, err := NewList(values, false)
	if err != nil {
		t.Fatalf("NewList: %v", err)
	}
	return g
}

func collect(t *testing.T, spec *Spec) [][]float64 {
	t.Helper()
	p, err := GeneratePoints(spec)
	if err != nil {
		t.Fatalf("GeneratePoints: %v", err)
	}
	var all [][]float64
	for {
		pt, ok := p.Next()
		if !ok {
			return all
		}
		all = append(all, pt)
	}
}

// #endregion helpers

// #region ordering

func TestCrossProductLastAxisFastest(t *testing.T) {
	spec := &Spec{
		Axes: []Axis{
			axis(t, "frag.x", linear(t, 0, 3, 4)),
			axis(t, "frag.y", list(t, 1, 2)),
		},
		Options: Options{NumRepeats: 1},
	}
	want := [][]float64{
		{0, 1}, {0, 2}, {1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 1}, {3, 2},
	}
	if diff := cmp.Diff(want, collect(t, spec)); diff != "" {
		t.Errorf("point order mismatch (-want +got):\n%s", diff)
	}
}

func TestRepeatsAreRepeatMajor(t *testing.T) {
	spec := &Spec{
		Axes:    []Axis{axis(t, "frag.x", list(t, 5, 6))},
		Options: Options{NumRepeats: 3},
	}
	want := [][]float64{{5}, {6}, {5}, {6}, {5}, {6}}
	if diff := cmp.Diff(want, collect(t, spec)); diff != "" {
		t.Errorf("point order mismatch (-want +got):\n%s", diff)
	}
}

func TestZeroAxesYieldsRepeatEmptyPoints(t *testing.T) {
	spec := &Spec{Options: Options{NumRepeats: 4}}
	got := collect(t, spec)
	if len(got) != 4 {
		t.Fatalf("got %d points, want 4", len(got))
	}
	for i, pt := range got {
		if len(pt) != 0 {
			t.Errorf("point %d has %d values, want 0", i, len(pt))
		}
	}
}

// #endregion ordering

// #region shuffle

func TestGlobalShuffleIsPermutation(t *testing.T) {
	seed := int64(1234)
	spec := &Spec{
		Axes: []Axis{
			axis(t, "frag.x", linear(t, 0, 3, 4)),
			axis(t, "frag.y", list(t, 1, 2)),
		},
		Options: Options{NumRepeats: 2, RandomiseOrderGlobally: true, Seed: &seed},
	}
	got := collect(t, spec)
	if len(got) != 16 {
		t.Fatalf("got %d points, want 16", len(got))
	}

	unshuffled := &Spec{
		Axes: []Axis{
			axis(t, "frag.x", linear(t, 0, 3, 4)),
			axis(t, "frag.y", list(t, 1, 2)),
		},
		Options: Options{NumRepeats: 2},
	}
	want := collect(t, unshuffled)

	key := func(pt []float64) [2]float64 { return [2]float64{pt[0], pt[1]} }
	counts := map[[2]float64]int{}
	for _, pt := range got {
		counts[key(pt)]++
	}
	for _, pt := range want {
		counts[key(pt)]--
	}
	for k, n := range counts {
		if n != 0 {
			t.Errorf("point %v count off by %d after shuffle", k, n)
		}
	}
}

func TestSameSeedSameOrder(t *testing.T) {
	build := func(seed int64) *Spec {
		return &Spec{
			Axes: []Axis{
				axis(t, "frag.x", linear(t, 0, 9, 10)),
				axis(t, "frag.y", list(t, 1, 2, 3)),
			},
			Options: Options{NumRepeats: 1, RandomiseOrderGlobally: true, Seed: &seed},
		}
	}
	a := collect(t, build(99))
	b := collect(t, build(99))
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed diverged (-a +b):\n%s", diff)
	}
}

func TestResolveSeedIsRecorded(t *testing.T) {
	spec := &Spec{
		Axes:    []Axis{axis(t, "frag.x", linear(t, 0, 1, 2))},
		Options: Options{NumRepeats: 1},
	}
	if _, err := GeneratePoints(spec); err != nil {
		t.Fatalf("GeneratePoints: %v", err)
	}
	if spec.Options.Seed == nil {
		t.Fatal("resolved seed not recorded in options")
	}
	if spec.Options.ResolveSeed() != *spec.Options.Seed {
		t.Error("ResolveSeed is not idempotent once recorded")
	}
}

// #endregion shuffle

// #region edge cases

func TestSpecValidateRejectsBadRepeats(t *testing.T) {
	spec := &Spec{
		Axes:    []Axis{axis(t, "frag.x", linear(t, 0, 1, 2))},
		Options: Options{NumRepeats: 0},
	}
	if err := spec.Validate(); !IsConfigError(err) {
		t.Errorf("Validate: err = %v, want config error", err)
	}
}

func TestIdentitiesFollowAxisOrder(t *testing.T) {
	spec := &Spec{
		Axes: []Axis{
			axis(t, "frag.x", linear(t, 0, 1, 2)),
			axis(t, "frag.y", list(t, 1)),
		},
		Options: Options{NumRepeats: 1},
	}
	var fqns []string
	for _, id := range spec.Identities() {
		fqns = append(fqns, id.FQN)
	}
	if diff := cmp.Diff([]string{"frag.x", "frag.y"}, fqns); diff != "" {
		t.Errorf("identities mismatch (-want +got):\n%s", diff)
	}
}

// #endregion edge cases
