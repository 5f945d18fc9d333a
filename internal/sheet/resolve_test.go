package sheet

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPoints(t *testing.T) Points {
	t.Helper()
	p, err := NewPoints(320, 720, 120)
	require.NoError(t, err)
	return p
}

func TestResolve_Rules(t *testing.T) {
	p := testPoints(t)
	th := DefaultThresholds()

	tests := []struct {
		name     string
		rel      Release
		wantName Name
		wantRule Rule
	}{
		{
			name:     "fast flick down closes",
			rel:      Release{FinalHeight: 300, VelocityY: 1.5, TranslationY: 20},
			wantName: Closed,
			wantRule: RuleFastClose,
		},
		{
			name:     "released below close height closes",
			rel:      Release{FinalHeight: 90, VelocityY: 0, TranslationY: 230},
			wantName: Closed,
			wantRule: RuleFastClose,
		},
		{
			name:     "moderate speed with large movement closes",
			rel:      Release{FinalHeight: 150, VelocityY: 0.6, TranslationY: 170},
			wantName: Closed,
			wantRule: RuleFastClose,
		},
		{
			name:     "moderate speed with small movement does not close",
			rel:      Release{FinalHeight: 290, VelocityY: 0.6, TranslationY: 30},
			wantName: Default,
			wantRule: RulePosition,
		},
		{
			name:     "collapse velocity from expanded",
			rel:      Release{FinalHeight: 550, VelocityY: 0.9, TranslationY: 50},
			wantName: Default,
			wantRule: RuleCollapse,
		},
		{
			name:     "small velocity with moderate movement collapses",
			rel:      Release{FinalHeight: 520, VelocityY: 0.4, TranslationY: 80},
			wantName: Default,
			wantRule: RuleCollapse,
		},
		{
			name:     "fast flick up expands",
			rel:      Release{FinalHeight: 340, VelocityY: -0.9, TranslationY: -20},
			wantName: Expanded,
			wantRule: RuleExpand,
		},
		{
			name:     "small upward velocity with moderate movement expands",
			rel:      Release{FinalHeight: 400, VelocityY: -0.4, TranslationY: -80},
			wantName: Expanded,
			wantRule: RuleExpand,
		},
		{
			name:     "slow release above midpoint expands",
			rel:      Release{FinalHeight: 500, VelocityY: -0.1, TranslationY: -20},
			wantName: Expanded,
			wantRule: RulePosition,
		},
		{
			name:     "slow release below midpoint snaps to default",
			rel:      Release{FinalHeight: 270, VelocityY: -0.1, TranslationY: -50},
			wantName: Default,
			wantRule: RulePosition,
		},
		{
			name:     "exactly at midpoint snaps to default",
			rel:      Release{FinalHeight: 460},
			wantName: Default,
			wantRule: RulePosition,
		},
		{
			name:     "slow drag back down from expanded stays expanded",
			rel:      Release{FinalHeight: 560, VelocityY: 0.2, TranslationY: 40},
			wantName: Expanded,
			wantRule: RulePosition,
		},
		{
			name:     "NaN velocity falls through to position",
			rel:      Release{FinalHeight: 500, VelocityY: math.NaN(), TranslationY: math.NaN()},
			wantName: Expanded,
			wantRule: RulePosition,
		},
		{
			name:     "infinite velocity is treated as zero",
			rel:      Release{FinalHeight: 300, VelocityY: math.Inf(1), TranslationY: 10},
			wantName: Default,
			wantRule: RulePosition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, rule := Resolve(p, th, tt.rel)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantRule, rule)
		})
	}
}

// branches evaluates each rule predicate independently.
func branches(p Points, th Thresholds, rel Release) [4]bool {
	v := rel.VelocityY
	dy := rel.TranslationY
	h := rel.FinalHeight
	return [4]bool{
		v > th.FastCloseVelocity || h < th.CloseHeight || (v > th.ModerateVelocity && dy > th.LargeMovement),
		v > th.CollapseVelocity || (v > th.SmallVelocity && dy > th.ModerateMovement),
		v < -th.CollapseVelocity || (v < -th.SmallVelocity && dy < -th.ModerateMovement),
		true,
	}
}

func TestResolve_FirstMatchingRuleWins(t *testing.T) {
	p := testPoints(t)
	th := DefaultThresholds()
	rng := rand.New(rand.NewPCG(7, 42))
	seen := map[Rule]int{}

	for range 20000 {
		rel := Release{
			FinalHeight:  rng.Float64() * p.Max(),
			VelocityY:    rng.Float64()*4 - 2,
			TranslationY: rng.Float64()*1200 - 600,
		}
		name, rule := Resolve(p, th, rel)

		again, againRule := Resolve(p, th, rel)
		require.Equal(t, name, again, "resolver must be deterministic")
		require.Equal(t, rule, againRule)

		b := branches(p, th, rel)
		first := -1
		for i, ok := range b {
			if ok {
				first = i
				break
			}
		}
		require.Equal(t, Rule(first), rule, "release %+v", rel)
		seen[rule]++
	}

	for _, r := range []Rule{RuleFastClose, RuleCollapse, RuleExpand, RulePosition} {
		assert.Positive(t, seen[r], "rule %s never exercised", r)
	}
}

func TestThresholds_Validate(t *testing.T) {
	require.NoError(t, DefaultThresholds().Validate())

	tests := []struct {
		name   string
		mutate func(*Thresholds)
	}{
		{"zero velocity", func(th *Thresholds) { th.SmallVelocity = 0 }},
		{"negative distance", func(th *Thresholds) { th.LargeMovement = -1 }},
		{"NaN close height", func(th *Thresholds) { th.CloseHeight = math.NaN() }},
		{"small above moderate", func(th *Thresholds) { th.SmallVelocity = 0.7 }},
		{"moderate above fast close", func(th *Thresholds) { th.ModerateVelocity = 1.5 }},
		{"small above collapse", func(th *Thresholds) {
			th.SmallVelocity = 0.5
			th.CollapseVelocity = 0.4
		}},
		{"moderate movement above large", func(th *Thresholds) { th.ModerateMovement = 200 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := DefaultThresholds()
			tt.mutate(&th)
			err := th.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestRuleString(t *testing.T) {
	assert.Equal(t, "fast-close", RuleFastClose.String())
	assert.Equal(t, "position", RulePosition.String())
	assert.Equal(t, "unknown", Rule(9).String())
}
