package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGame(t *testing.T, s Secret) *Game {
	t.Helper()
	g, err := NewWithSecret(s)
	require.NoError(t, err)
	return g
}

func TestRandomSecret_Rules(t *testing.T) {
	for n := 0; n < 2000; n++ {
		s := RandomSecret()
		require.NoError(t, checkCode(s[:]), "secret %s", s)
	}
}

func TestRandomSecret_CoversEveryDigitAtEveryPosition(t *testing.T) {
	var seen [CodeLen][MaxDigit + 1]bool
	for n := 0; n < 5000; n++ {
		s := RandomSecret()
		for i, d := range s {
			seen[i][d] = true
		}
	}
	for i := 0; i < CodeLen; i++ {
		for d := MinDigit; d <= MaxDigit; d++ {
			assert.True(t, seen[i][d], "digit %d never drawn at position %d", d, i)
		}
	}
}

func TestSecretFrom_IdentityShuffleKeepsOrder(t *testing.T) {
	// intn returning the top index swaps each element with itself.
	s := secretFrom(func(n int) int { return n - 1 })
	assert.Equal(t, Secret{1, 2, 3, 4}, s)
}

func TestSecretFrom_AlwaysZero(t *testing.T) {
	// i=5 swaps 0<->5, i=4 swaps 0<->4, ... leaving [2 3 4 5 6 1].
	s := secretFrom(func(int) int { return 0 })
	assert.Equal(t, Secret{2, 3, 4, 5}, s)
}

func TestNew_FreshState(t *testing.T) {
	g := New()
	assert.Len(t, g.ID(), 16)
	assert.Equal(t, 0, g.Attempts())
	assert.Equal(t, MaxAttempts, g.MaxAttempts())
	assert.Equal(t, MaxAttempts, g.Remaining())
	assert.False(t, g.Over())
	assert.False(t, g.Won())
	assert.Equal(t, StatePlaying, g.State())
	s := g.Secret()
	assert.NoError(t, checkCode(s[:]))

	assert.NotEqual(t, g.ID(), New().ID())
}

func TestNewWithSecret_Rejects(t *testing.T) {
	for _, s := range []Secret{{1, 1, 2, 3}, {0, 1, 2, 3}, {1, 2, 3, 7}, {}} {
		_, err := NewWithSecret(s)
		assert.ErrorIs(t, err, ErrInvalidSecret, "secret %v", s)
	}
}

func TestScoreGuess(t *testing.T) {
	cases := []struct {
		secret      Secret
		guess       Guess
		hits, blows int
	}{
		{Secret{1, 2, 3, 4}, Guess{1, 3, 2, 5}, 1, 2},
		{Secret{1, 2, 3, 4}, Guess{1, 2, 3, 4}, 4, 0},
		{Secret{1, 2, 3, 4}, Guess{4, 3, 2, 1}, 0, 4},
		{Secret{1, 2, 3, 4}, Guess{5, 6, 1, 2}, 0, 2},
		{Secret{1, 2, 3, 4}, Guess{1, 2, 5, 6}, 2, 0},
		{Secret{5, 4, 3, 2}, Guess{5, 4, 3, 1}, 3, 0},
		{Secret{5, 4, 3, 2}, Guess{4, 3, 2, 1}, 0, 3},
		{Secret{6, 5, 4, 3}, Guess{1, 2, 5, 6}, 0, 2},
	}
	for _, tc := range cases {
		h, b := scoreGuess(tc.secret, tc.guess)
		assert.Equal(t, tc.hits, h, "hits for %s vs %s", tc.guess, tc.secret)
		assert.Equal(t, tc.blows, b, "blows for %s vs %s", tc.guess, tc.secret)
	}
}

// pairBlows counts ordered pairs i != j with guess[i] == secret[j].
func pairBlows(secret Secret, guess Guess) int {
	n := 0
	for i := 0; i < CodeLen; i++ {
		for j := 0; j < CodeLen; j++ {
			if i != j && guess[i] == secret[j] {
				n++
			}
		}
	}
	return n
}

func TestScoreGuess_AllCodes(t *testing.T) {
	var codes []Guess
	for a := MinDigit; a <= MaxDigit; a++ {
		for b := MinDigit; b <= MaxDigit; b++ {
			for c := MinDigit; c <= MaxDigit; c++ {
				for d := MinDigit; d <= MaxDigit; d++ {
					g := Guess{a, b, c, d}
					if checkCode(g[:]) == nil {
						codes = append(codes, g)
					}
				}
			}
		}
	}
	require.Len(t, codes, 360)

	for _, sc := range codes {
		secret := Secret(sc)
		for _, guess := range codes {
			h, b := scoreGuess(secret, guess)
			require.GreaterOrEqual(t, h, 0)
			require.GreaterOrEqual(t, b, 0)
			require.LessOrEqual(t, h+b, CodeLen, "%s vs %s", guess, secret)
			require.Equal(t, pairBlows(secret, guess), b, "%s vs %s", guess, secret)
			require.Equal(t, guess == Guess(secret), h == CodeLen)
		}
	}
}

func TestApplyGuess_Correct(t *testing.T) {
	g := mustGame(t, Secret{3, 1, 6, 2})

	res, err := g.ApplyGuess(Guess(g.Secret()))
	require.NoError(t, err)
	assert.Equal(t, Result{Hits: 4, Blows: 0, Correct: true, Over: true, Attempts: 1}, res)
	assert.True(t, g.Over())
	assert.True(t, g.Won())
	assert.Equal(t, StateWon, g.State())
}

func TestApplyGuess_HitsAndBlows(t *testing.T) {
	g := mustGame(t, Secret{1, 2, 3, 4})

	res, err := g.ApplyGuess(Guess{1, 3, 2, 5})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Hits)
	assert.Equal(t, 2, res.Blows)
	assert.False(t, res.Correct)
	assert.False(t, res.Over)
	assert.Equal(t, 1, g.Attempts())
}

func TestApplyGuess_BudgetExhausted(t *testing.T) {
	g := mustGame(t, Secret{1, 2, 3, 4})

	for i := 1; i <= MaxAttempts; i++ {
		require.False(t, g.Over(), "over before attempt %d", i)
		res, err := g.ApplyGuess(Guess{4, 3, 2, 1})
		require.NoError(t, err)
		assert.Equal(t, i, res.Attempts)
		assert.Equal(t, i, g.Attempts())
		assert.Equal(t, i == MaxAttempts, res.Over)
	}
	assert.True(t, g.Over())
	assert.False(t, g.Won())
	assert.Equal(t, StateLost, g.State())
	assert.Equal(t, 0, g.Remaining())
}

func TestApplyGuess_CorrectOnLastAttemptWins(t *testing.T) {
	g := mustGame(t, Secret{1, 2, 3, 4})
	for i := 1; i < MaxAttempts; i++ {
		_, err := g.ApplyGuess(Guess{5, 6, 1, 2})
		require.NoError(t, err)
	}
	res, err := g.ApplyGuess(Guess{1, 2, 3, 4})
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.True(t, res.Over)
	assert.Equal(t, StateWon, g.State())
}

func TestApplyGuess_AfterOverIsRejected(t *testing.T) {
	g := mustGame(t, Secret{1, 2, 3, 4})
	_, err := g.ApplyGuess(Guess{1, 2, 3, 4})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		res, err := g.ApplyGuess(Guess{5, 6, 1, 2})
		assert.ErrorIs(t, err, ErrGameOver)
		assert.True(t, res.Over)
		assert.True(t, res.Correct)
		assert.Equal(t, 1, res.Attempts)
	}
	assert.True(t, g.Over())
	assert.Equal(t, 1, g.Attempts())
	assert.Equal(t, StateWon, g.State())
}

func TestApplyGuess_AfterLossIsRejected(t *testing.T) {
	g := mustGame(t, Secret{1, 2, 3, 4})
	for i := 0; i < MaxAttempts; i++ {
		_, err := g.ApplyGuess(Guess{4, 3, 2, 1})
		require.NoError(t, err)
	}
	require.Equal(t, StateLost, g.State())

	for _, guess := range []Guess{{4, 3, 2, 1}, {1, 2, 3, 4}} {
		res, err := g.ApplyGuess(guess)
		assert.ErrorIs(t, err, ErrGameOver)
		assert.Equal(t, Result{Over: true, Attempts: MaxAttempts}, res)
	}
	assert.True(t, g.Over())
	assert.False(t, g.Won())
	assert.Equal(t, MaxAttempts, g.Attempts())
	assert.Equal(t, StateLost, g.State())
}

func TestApplyGuess_RejectsHandBuiltInvalidGuess(t *testing.T) {
	g := mustGame(t, Secret{1, 2, 3, 4})

	_, err := g.ApplyGuess(Guess{9, 1, 2, 3})
	assert.ErrorIs(t, err, ErrGuessOutOfRange)
	_, err = g.ApplyGuess(Guess{1, 1, 2, 3})
	assert.ErrorIs(t, err, ErrGuessDuplicate)
	assert.Equal(t, 0, g.Attempts())
}

func TestSubmit_ParseFailureKeepsState(t *testing.T) {
	g := mustGame(t, Secret{1, 2, 3, 4})

	for _, raw := range []string{"", "123", "12345", "1237", "1231", "12a4", " 1234"} {
		_, err := g.Submit(raw)
		assert.ErrorIs(t, err, ErrInvalidGuess, "input %q", raw)
	}
	assert.Equal(t, 0, g.Attempts())
	assert.False(t, g.Over())

	res, err := g.Submit("1325")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Hits)
	assert.Equal(t, 2, res.Blows)
	assert.Equal(t, 1, g.Attempts())
}

func TestSecretString(t *testing.T) {
	assert.Equal(t, "3152", Secret{3, 1, 5, 2}.String())
	assert.Equal(t, "6543", Guess{6, 5, 4, 3}.String())
}
