package game

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BakirHaljevac/Blackjack/internal/deck"
	"github.com/BakirHaljevac/Blackjack/internal/display"
)

// recorder captures everything the round asked the display to show.
type recorder struct {
	hands    []shownHand
	messages []string
	outcomes []string
}

type shownHand struct {
	owner display.Owner
	count int
	score int
}

func (r *recorder) ShowHand(owner display.Owner, cards []deck.Card, count, score int) {
	r.hands = append(r.hands, shownHand{owner: owner, count: count, score: score})
}

func (r *recorder) ShowMessage(text string)  { r.messages = append(r.messages, text) }
func (r *recorder) ShowOutcome(text string)  { r.outcomes = append(r.outcomes, text) }
func (r *recorder) lastHand(owner display.Owner) (shownHand, bool) {
	for i := len(r.hands) - 1; i >= 0; i-- {
		if r.hands[i].owner == owner {
			return r.hands[i], true
		}
	}
	return shownHand{}, false
}

// script feeds a fixed command sequence and EOFs when it runs dry.
type script struct {
	cmds []string
}

func (s *script) Prompt() (string, error) {
	if len(s.cmds) == 0 {
		return "", io.EOF
	}
	cmd := s.cmds[0]
	s.cmds = s.cmds[1:]
	return cmd, nil
}

func stacked(ranks ...deck.Rank) *deck.Deck {
	cards := make([]deck.Card, len(ranks))
	for i, r := range ranks {
		cards[i] = deck.Card{Rank: r}
	}
	return deck.NewStacked(cards)
}

func TestPlayerBlackjackWins(t *testing.T) {
	// player {ace, king}, dealer {9, 7}
	rec := &recorder{}
	r := NewRound(stacked(deck.Ace, deck.King, deck.Nine, deck.Seven), rec, &script{})

	outcome, err := r.Play()
	require.NoError(t, err)
	assert.Equal(t, PlayerBlackjack, outcome)
	assert.Equal(t, []string{"BLACKJACK! YOU WIN!"}, rec.outcomes)

	// the dealer's full hand is revealed with its real score
	last, ok := rec.lastHand(display.Dealer)
	require.True(t, ok)
	assert.Equal(t, 2, last.count)
	assert.Equal(t, 16, last.score)
}

func TestDoubleBlackjackPushes(t *testing.T) {
	// player {ace, king}, dealer {ace, queen}
	rec := &recorder{}
	r := NewRound(stacked(deck.Ace, deck.King, deck.Ace, deck.Queen), rec, &script{})

	outcome, err := r.Play()
	require.NoError(t, err)
	assert.Equal(t, Push, outcome)
	assert.Contains(t, rec.messages, "DOUBLE BLACKJACK!")
}

func TestDealerDrawsPastPlayerAndWins(t *testing.T) {
	// player stands on {king, 8} = 18; dealer {9, 8} = 17 draws a 4 to 21.
	// 21 with three cards is a plain dealer win, not blackjack.
	rec := &recorder{}
	r := NewRound(stacked(deck.King, deck.Eight, deck.Nine, deck.Eight, deck.Four),
		rec, &script{cmds: []string{"s"}})

	outcome, err := r.Play()
	require.NoError(t, err)
	assert.Equal(t, DealerWin, outcome)
	assert.Contains(t, rec.messages, "DEALER DRAWS ANOTHER CARD..")

	last, ok := rec.lastHand(display.Dealer)
	require.True(t, ok)
	assert.Equal(t, 3, last.count)
	assert.Equal(t, 21, last.score)
}

func TestPlayerBustEndsRoundImmediately(t *testing.T) {
	// player hits from {king, 5} = 15 into a king: 25, bust.
	rec := &recorder{}
	r := NewRound(stacked(deck.King, deck.Five, deck.Nine, deck.Seven, deck.King),
		rec, &script{cmds: []string{"h"}})

	outcome, err := r.Play()
	require.NoError(t, err)
	assert.Equal(t, PlayerBust, outcome)
	assert.Equal(t, []string{"BUST! DEALER WINS!"}, rec.outcomes)
	assert.NotContains(t, rec.messages, "DEALER'S TURN")
}

func TestDealerNaturalBeatsStandingPlayer(t *testing.T) {
	// player stands on {king, 9} = 19; dealer holds {ace, king}.
	rec := &recorder{}
	r := NewRound(stacked(deck.King, deck.Nine, deck.Ace, deck.King),
		rec, &script{cmds: []string{"s"}})

	outcome, err := r.Play()
	require.NoError(t, err)
	assert.Equal(t, DealerBlackjack, outcome)
}

func TestDealerBustsPlayerWins(t *testing.T) {
	// player stands on {king, 9} = 19; dealer {10, 6} = 16 draws a king: 26.
	rec := &recorder{}
	r := NewRound(stacked(deck.King, deck.Nine, deck.Ten, deck.Six, deck.King),
		rec, &script{cmds: []string{"s"}})

	outcome, err := r.Play()
	require.NoError(t, err)
	assert.Equal(t, DealerBust, outcome)
	assert.Equal(t, []string{"DEALER BUSTS! YOU WIN!"}, rec.outcomes)
}

func TestMatchedScoresPush(t *testing.T) {
	// player stands on {ten, 8} = 18; dealer already holds {nine, nine} = 18.
	rec := &recorder{}
	r := NewRound(stacked(deck.Ten, deck.Eight, deck.Nine, deck.Nine),
		rec, &script{cmds: []string{"s"}})

	outcome, err := r.Play()
	require.NoError(t, err)
	assert.Equal(t, Push, outcome)
}

func TestPlayerHittingToTwentyOneHandsOverToDealer(t *testing.T) {
	// player {king, 5} hits a 6 to exactly 21; dealer {9, 8} = 17 must
	// draw and a 4 brings it to 21 too: push.
	rec := &recorder{}
	r := NewRound(stacked(deck.King, deck.Five, deck.Nine, deck.Eight, deck.Six, deck.Four),
		rec, &script{cmds: []string{"h"}})

	outcome, err := r.Play()
	require.NoError(t, err)
	assert.Equal(t, Push, outcome)
	assert.Contains(t, rec.messages, "DEALER'S TURN")
}

func TestUnrecognizedCommandsAreSilentlyIgnored(t *testing.T) {
	rec := &recorder{}
	r := NewRound(stacked(deck.Ten, deck.Eight, deck.Nine, deck.Nine),
		rec, &script{cmds: []string{"x", "", "hit", "stand", "s"}})

	outcome, err := r.Play()
	require.NoError(t, err)
	assert.Equal(t, Push, outcome)
	// nothing was announced about the junk input
	for _, msg := range rec.messages {
		assert.NotContains(t, msg, "hit")
	}
}

func TestPromptErrorAbortsRound(t *testing.T) {
	rec := &recorder{}
	r := NewRound(stacked(deck.Ten, deck.Eight, deck.Nine, deck.Nine), rec, &script{})

	_, err := r.Play()
	require.ErrorIs(t, err, io.EOF)
	assert.Empty(t, rec.outcomes)
}

func TestInitialDealOrderIsPlayerFirst(t *testing.T) {
	// the first two cards go to the player, the next two to the dealer
	rec := &recorder{}
	r := NewRound(stacked(deck.Ace, deck.King, deck.Two, deck.Three), rec, &script{})

	outcome, err := r.Play()
	require.NoError(t, err)
	assert.Equal(t, PlayerBlackjack, outcome)

	last, ok := rec.lastHand(display.Player)
	require.True(t, ok)
	assert.Equal(t, 21, last.score)
}

func TestExhaustedDeckSurfacesError(t *testing.T) {
	rec := &recorder{}
	r := NewRound(stacked(deck.Ace, deck.King, deck.Two), rec, &script{})

	_, err := r.Play()
	require.ErrorIs(t, err, deck.ErrExhausted)
}

func TestDealerDrawPacingUsesClock(t *testing.T) {
	mock := quartz.NewMock(t)
	trap := mock.Trap().AfterFunc()
	defer trap.Close()

	// player stands on 18; dealer at 17 pauses once before drawing to 21
	rec := &recorder{}
	r := NewRound(stacked(deck.King, deck.Eight, deck.Nine, deck.Eight, deck.Four),
		rec, &script{cmds: []string{"s"}},
		WithClock(mock), WithDelay(time.Second))

	type result struct {
		outcome Outcome
		err     error
	}
	done := make(chan result, 1)
	go func() {
		o, err := r.Play()
		done <- result{o, err}
	}()

	ctx := context.Background()
	call := trap.MustWait(ctx)
	call.MustRelease(ctx)
	mock.Advance(time.Second).MustWait(ctx)

	res := <-done
	require.NoError(t, res.err)
	assert.Equal(t, DealerWin, res.outcome)
}
