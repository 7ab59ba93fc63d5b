package lsystem_test

import (
	"context"
	"strings"
	"testing"

	"github.com/katalvlaran/lvfractal/limits"
	"github.com/katalvlaran/lvfractal/lsystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRewrite covers productions and the identity rule.
func TestRewrite(t *testing.T) {
	c := lsystem.Carpet()
	assert.Equal(t, lsystem.SymbolString("F+F-F-F-UGD+F+F+F-F"), c.Rewrite(lsystem.SymbolF))
	assert.Equal(t, lsystem.SymbolString("GGG"), c.Rewrite(lsystem.SymbolG))
	for _, sym := range []lsystem.Symbol{lsystem.SymbolUp, lsystem.SymbolDown, lsystem.SymbolRight, lsystem.SymbolLeft} {
		assert.Equal(t, lsystem.SymbolString(sym.String()), c.Rewrite(sym), "identity for %s", sym)
	}

	tr := lsystem.Triangle()
	assert.Equal(t, lsystem.SymbolString("F-G+F+G-F"), tr.Rewrite(lsystem.SymbolF))
	assert.Equal(t, lsystem.SymbolString("GG"), tr.Rewrite(lsystem.SymbolG))
}

// TestCompute_KnownStrings pins the first passes of both presets.
func TestCompute_KnownStrings(t *testing.T) {
	ctx := context.Background()

	got, err := lsystem.Carpet().Compute(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, lsystem.SymbolString("F"), got)

	got, err = lsystem.Carpet().Compute(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, lsystem.SymbolString("F+F-F-F-UGD+F+F+F-F"), got)

	got, err = lsystem.Triangle().Compute(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, lsystem.SymbolString("F-G+F+G-F-GG-GG"), got)
}

// TestNext_DoesNotMutate: a pass yields a new string and leaves the input alone.
func TestNext_DoesNotMutate(t *testing.T) {
	tr := lsystem.Triangle()
	in := tr.Axiom()
	out := tr.Next(in)
	assert.Equal(t, lsystem.SymbolString("F-G-G"), in)
	assert.Equal(t, lsystem.SymbolString("F-G+F+G-F-GG-GG"), out)
}

// TestLength_ClosedForm compares the growth-matrix length with the materialized string.
func TestLength_ClosedForm(t *testing.T) {
	ctx := context.Background()
	for _, sys := range []*lsystem.System{lsystem.Carpet(), lsystem.Triangle()} {
		for n := 0; n <= 4; n++ {
			s, err := sys.Compute(ctx, n)
			require.NoError(t, err)
			l, err := sys.Length(n)
			require.NoError(t, err)
			assert.Equal(t, uint64(len(s)), l, "%s n=%d", sys.Name(), n)
		}
	}
}

// TestLength_CarpetRecurrence checks the carpet counts by hand:
// F_n = 8·F_{n-1}, G_n = F_{n-1} + 3·G_{n-1}, turns_n = turns_{n-1} + 8·F_{n-1},
// UD_n = UD_{n-1} + 2·F_{n-1}.
func TestLength_CarpetRecurrence(t *testing.T) {
	f, g, turns, ud := uint64(1), uint64(0), uint64(0), uint64(0)
	sys := lsystem.Carpet()
	for n := 0; n <= 12; n++ {
		l, err := sys.Length(n)
		require.NoError(t, err)
		assert.Equal(t, f+g+turns+ud, l, "n=%d", n)
		f, g, turns, ud = 8*f, f+3*g, turns+8*f, ud+2*f
	}
}

// TestLength_Overflow reports ResourceExhausted instead of wrapping around.
func TestLength_Overflow(t *testing.T) {
	_, err := lsystem.Carpet().Length(40)
	assert.ErrorIs(t, err, limits.ErrResourceExhausted)

	_, err = lsystem.Carpet().Length(-1)
	assert.ErrorIs(t, err, limits.ErrInvalidParameter)
}

// TestCompute_Ceiling refuses to materialize past MaxSymbols.
func TestCompute_Ceiling(t *testing.T) {
	ctx := context.Background()
	_, err := lsystem.Carpet().Compute(ctx, 3, lsystem.WithLimits(limits.Limits{MaxSymbols: 100}))
	assert.ErrorIs(t, err, limits.ErrResourceExhausted)

	_, err = lsystem.Carpet().Compute(ctx, -1)
	assert.ErrorIs(t, err, limits.ErrInvalidParameter)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	s, err := lsystem.Carpet().Compute(cancelled, 2)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, s)
}

// TestCompute_EmptyProductionPeak: the ceiling uses the largest pass, not the last.
func TestCompute_EmptyProductionPeak(t *testing.T) {
	// F → "GGGG", G → "" : 1, 4, 0 symbols.
	sys, err := lsystem.NewSystem("vanish", "F", lsystem.Rules{lsystem.SymbolF: "GGGG", lsystem.SymbolG: ""}, 90)
	require.NoError(t, err)

	l, err := sys.Length(2)
	require.NoError(t, err)
	assert.Zero(t, l)

	_, err = sys.Compute(context.Background(), 2, lsystem.WithLimits(limits.Limits{MaxSymbols: 3}))
	assert.ErrorIs(t, err, limits.ErrResourceExhausted)
}

// TestStream_MatchesCompute verifies lazy and eager expansion agree.
func TestStream_MatchesCompute(t *testing.T) {
	for _, sys := range []*lsystem.System{lsystem.Carpet(), lsystem.Triangle()} {
		for n := 0; n <= 3; n++ {
			want, err := sys.Compute(context.Background(), n)
			require.NoError(t, err)
			seq, err := sys.Stream(n)
			require.NoError(t, err)

			var b strings.Builder
			for sym := range seq {
				b.WriteByte(byte(sym))
			}
			assert.Equal(t, string(want), b.String(), "%s n=%d", sys.Name(), n)
		}
	}

	_, err := lsystem.Carpet().Stream(-1)
	assert.ErrorIs(t, err, limits.ErrInvalidParameter)
}

// TestStream_EarlyStop stops expansion as soon as the consumer breaks.
func TestStream_EarlyStop(t *testing.T) {
	seq, err := lsystem.Carpet().Stream(30)
	require.NoError(t, err)
	n := 0
	for range seq {
		n++
		if n == 10 {
			break
		}
	}
	assert.Equal(t, 10, n)
}

// TestNewSystem_Validation rejects symbols outside the alphabet.
func TestNewSystem_Validation(t *testing.T) {
	cases := []struct {
		name  string
		axiom lsystem.SymbolString
		rules lsystem.Rules
		angle float64
	}{
		{"EmptyAxiom", "", nil, 90},
		{"BadAxiom", "FX", nil, 90},
		{"BadRuleKey", "F", lsystem.Rules{'X': "F"}, 90},
		{"BadRuleBody", "F", lsystem.Rules{lsystem.SymbolF: "F[F]"}, 90},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := lsystem.NewSystem(tc.name, tc.axiom, tc.rules, tc.angle)
			assert.ErrorIs(t, err, limits.ErrInvalidParameter)
		})
	}

	_, err := lsystem.NewSystem("x", "FX", nil, 90)
	assert.ErrorIs(t, err, lsystem.ErrUnknownSymbol)
}

func TestPreset(t *testing.T) {
	c, err := lsystem.Preset("Carpet")
	require.NoError(t, err)
	assert.Equal(t, "carpet", c.Name())
	assert.Equal(t, 90.0, c.Angle())

	tr, err := lsystem.Preset("triangle")
	require.NoError(t, err)
	assert.Equal(t, 120.0, tr.Angle())

	_, err = lsystem.Preset("dragon")
	assert.ErrorIs(t, err, limits.ErrInvalidParameter)
}

// TestNewSystem_CopiesRules: mutating the caller's map after construction has no effect.
func TestNewSystem_CopiesRules(t *testing.T) {
	rules := lsystem.Rules{lsystem.SymbolF: "FF"}
	sys, err := lsystem.NewSystem("copy", "F", rules, 90)
	require.NoError(t, err)
	rules[lsystem.SymbolF] = "F+F"
	assert.Equal(t, lsystem.SymbolString("FF"), sys.Rewrite(lsystem.SymbolF))
}

func TestSymbolString_Count(t *testing.T) {
	s, err := lsystem.Carpet().Compute(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 64, s.Count(lsystem.SymbolF))
	assert.Equal(t, s.Count(lsystem.SymbolUp), s.Count(lsystem.SymbolDown))

	n := 0
	for range s.Symbols() {
		n++
	}
	assert.Equal(t, len(s), n)
}
