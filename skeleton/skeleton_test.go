package skeleton_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/krfkeith/bijective-goedel-numberings/bignat"
	"github.com/krfkeith/bijective-goedel-numberings/catalan"
	"github.com/krfkeith/bijective-goedel-numberings/skeleton"
	"github.com/krfkeith/bijective-goedel-numberings/term"
)

func bn(n uint64) bignat.BigNat { return bignat.FromUint64(n) }

// SplitJoinSuite groups tests for the skeleton/sym split-join pair.
type SplitJoinSuite struct {
	suite.Suite
}

func (s *SplitJoinSuite) TestSplit_Leaf_Var() {
	pars, syms := skeleton.Split(term.NewVar(bn(5)))
	require.Equal(s.T(), catalan.Pars{0, 1}, pars)
	require.Len(s.T(), syms, 1)
	require.True(s.T(), syms[0].Equal(bn(10)))
}

func (s *SplitJoinSuite) TestSplit_Leaf_NullaryFun() {
	pars, syms := skeleton.Split(term.NewFun(bn(5), nil))
	require.Equal(s.T(), catalan.Pars{0, 1}, pars)
	require.Len(s.T(), syms, 1)
	require.True(s.T(), syms[0].Equal(bn(11)))
}

func (s *SplitJoinSuite) TestSplit_NestedApplication() {
	tr := term.NewFun(bn(3), []term.Term{
		term.NewVar(bn(3)),
		term.NewFun(bn(3), nil),
	})
	pars, syms := skeleton.Split(tr)

	require.Equal(s.T(), catalan.Pars{0, 0, 1, 0, 1, 1}, pars)
	wantSyms := []bignat.BigNat{bn(3), bn(6), bn(7)}
	for i, w := range wantSyms {
		require.Truef(s.T(), syms[i].Equal(w), "syms[%d] = %s, want %s", i, syms[i], w)
	}
}

func (s *SplitJoinSuite) TestSplit_LenInvariant() {
	tr := term.NewFun(bn(1), []term.Term{
		term.NewVar(bn(0)),
		term.NewFun(bn(2), []term.Term{term.NewVar(bn(9))}),
		term.NewFun(bn(4), nil),
	})
	pars, syms := skeleton.Split(tr)
	require.Equal(s.T(), 2*tr.NodeCount(), len(pars))
	require.Equal(s.T(), tr.NodeCount(), len(syms))
}

func (s *SplitJoinSuite) TestJoin_RoundTrip() {
	cases := []term.Term{
		term.NewVar(bn(0)),
		term.NewFun(bn(5), nil),
		term.NewFun(bn(3), []term.Term{term.NewVar(bn(3)), term.NewFun(bn(3), nil)}),
		term.NewFun(bn(1), []term.Term{
			term.NewVar(bn(0)),
			term.NewFun(bn(2), []term.Term{term.NewVar(bn(9))}),
			term.NewFun(bn(4), nil),
		}),
	}
	for _, want := range cases {
		pars, syms := skeleton.Split(want)
		got, err := skeleton.Join(pars, syms)
		require.NoError(s.T(), err)
		require.True(s.T(), term.Equal(got, want), "Join(Split(%s)) = %s, want %s", want, got, want)
	}
}

func (s *SplitJoinSuite) TestJoin_VarVsNullaryFunDisambiguation() {
	v, err := skeleton.Join(catalan.Pars{0, 1}, []bignat.BigNat{bn(6)})
	require.NoError(s.T(), err)
	require.True(s.T(), term.Equal(v, term.NewVar(bn(3))), "even sym decoded to %s, want v3", v)

	f, err := skeleton.Join(catalan.Pars{0, 1}, []bignat.BigNat{bn(7)})
	require.NoError(s.T(), err)
	require.True(s.T(), term.Equal(f, term.NewFun(bn(3), nil)), "odd sym decoded to %s, want F3", f)
}

func (s *SplitJoinSuite) TestJoin_UnmatchedClose() {
	_, err := skeleton.Join(catalan.Pars{1}, []bignat.BigNat{})
	require.True(s.T(), errors.Is(err, skeleton.ErrMalformedPair))
}

func (s *SplitJoinSuite) TestJoin_UnclosedApplication() {
	_, err := skeleton.Join(catalan.Pars{0, 0, 1}, []bignat.BigNat{bn(1), bn(2)})
	require.True(s.T(), errors.Is(err, skeleton.ErrMalformedPair))
}

func (s *SplitJoinSuite) TestJoin_ExhaustedSyms() {
	_, err := skeleton.Join(catalan.Pars{0, 1}, []bignat.BigNat{})
	require.True(s.T(), errors.Is(err, skeleton.ErrMalformedPair))
}

func (s *SplitJoinSuite) TestJoin_ResidualSyms() {
	_, err := skeleton.Join(catalan.Pars{0, 1}, []bignat.BigNat{bn(2), bn(4)})
	require.True(s.T(), errors.Is(err, skeleton.ErrMalformedPair))
}

func (s *SplitJoinSuite) TestJoin_InvalidByte() {
	_, err := skeleton.Join(catalan.Pars{0, 2}, []bignat.BigNat{bn(2)})
	require.True(s.T(), errors.Is(err, skeleton.ErrMalformedPair))
}

func (s *SplitJoinSuite) TestJoin_ExtraTopLevelTerm() {
	_, err := skeleton.Join(catalan.Pars{0, 1, 0, 1}, []bignat.BigNat{bn(2), bn(4)})
	require.True(s.T(), errors.Is(err, skeleton.ErrMalformedPair))
}

func TestSplitJoinSuite(t *testing.T) {
	suite.Run(t, new(SplitJoinSuite))
}
