package combat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samdwyer/terminalquests/internal/entity"
	"github.com/samdwyer/terminalquests/internal/rng"
	rngmock "github.com/samdwyer/terminalquests/internal/rng/mock"
	"github.com/samdwyer/terminalquests/internal/rng/rngtest"
)

func newFight(t *testing.T, enemyHP, enemyAtk int, faces ...int) (*Encounter, *entity.Player, *entity.Enemy, *rngtest.ScriptedRoller) {
	t.Helper()
	roller := rngtest.NewScriptedRoller(faces...)
	player := entity.NewPlayer()
	enemy := entity.NewEnemy(nil, enemyHP, enemyAtk)
	enc := Begin(context.Background(), player, enemy, 1, rng.New(roller))
	return enc, player, enemy, roller
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome  Outcome
		expected string
	}{
		{Ongoing, "ongoing"},
		{PlayerWon, "player_won"},
		{PlayerLost, "player_lost"},
		{PlayerFled, "player_fled"},
		{Outcome(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.expected {
			t.Errorf("Outcome(%d).String() = %q, want %q", tt.outcome, got, tt.expected)
		}
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		input string
		want  Action
	}{
		{"attack", ActionAttack},
		{"  ATTACK ", ActionAttack},
		{"Heal", ActionHeal},
		{"run\n", ActionRun},
		{"flee", ActionUnknown},
		{"", ActionUnknown},
	}
	for _, tt := range tests {
		if got := ParseAction(tt.input); got != tt.want {
			t.Errorf("ParseAction(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestOpening(t *testing.T) {
	enc, _, _, _ := newFight(t, 7, 3)
	assert.Equal(t, "An Enemy blocks your way! (HP 7, ATK 3)", enc.Opening())
	assert.Equal(t, Ongoing, enc.Outcome())
}

func TestDamageRanges(t *testing.T) {
	src := rng.NewSeeded(3)
	for i := 0; i < 300; i++ {
		hit := AttackDamage(src, 4)
		require.GreaterOrEqual(t, hit, 3)
		require.LessOrEqual(t, hit, 6)

		weak := AttackDamage(src, 1)
		require.GreaterOrEqual(t, weak, 1)
		require.LessOrEqual(t, weak, 3)

		back := RetaliationDamage(src, 2)
		require.GreaterOrEqual(t, back, 1)
		require.LessOrEqual(t, back, 3)
	}
}

func TestAttackKillsEnemyWithPotionDrop(t *testing.T) {
	// attack 4 rolls [3,6]; face 1 -> 3 damage, then d100 35 -> drop
	enc, player, enemy, _ := newFight(t, 3, 2, 1, 35)

	result := enc.Step(context.Background(), "attack")

	assert.Equal(t, PlayerWon, result.Outcome)
	assert.Equal(t, 3, result.EnemyDamage)
	assert.False(t, result.Retaliated)
	assert.False(t, enemy.IsAlive())
	assert.Equal(t, entity.StartPotions+1, player.Potions)
	assert.Equal(t, entity.StartHealth, player.Health)
	assert.Contains(t, result.Messages, "The enemy dropped a healing potion.")
}

func TestAttackKillsEnemyWithoutDrop(t *testing.T) {
	enc, player, _, _ := newFight(t, 3, 2, 1, 36)

	result := enc.Step(context.Background(), "attack")

	assert.Equal(t, PlayerWon, result.Outcome)
	assert.Equal(t, entity.StartPotions, player.Potions)
}

func TestAttackThenRetaliation(t *testing.T) {
	// player hits for 3, enemy atk 3 rolls [2,4]; face 3 -> 4 damage
	enc, player, enemy, _ := newFight(t, 10, 3, 1, 3)

	result := enc.Step(context.Background(), "attack")

	assert.Equal(t, Ongoing, result.Outcome)
	assert.Equal(t, 7, enemy.HP)
	assert.True(t, result.Retaliated)
	assert.Equal(t, 4, result.PlayerDamage)
	assert.Equal(t, entity.StartHealth-4, player.Health)
}

func TestRunForcedDraws(t *testing.T) {
	tests := []struct {
		name        string
		draw        int
		wantOutcome Outcome
		wantDamage  bool
	}{
		{"draw below threshold flees", 1, PlayerFled, false},
		{"draw at threshold flees", 45, PlayerFled, false},
		{"draw above threshold fails", 46, Ongoing, true},
		{"high draw fails", 100, Ongoing, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			roller := rngmock.NewMockRoller(ctrl)

			calls := []any{roller.EXPECT().Roll(100).Return(tt.draw, nil)}
			if tt.wantDamage {
				// enemy attack 3 rolls [2,4] on a d3
				calls = append(calls, roller.EXPECT().Roll(3).Return(2, nil))
			}
			gomock.InOrder(calls...)

			player := entity.NewPlayer()
			enemy := entity.NewEnemy(nil, 9, 3)
			enc := Begin(context.Background(), player, enemy, 1, rng.New(roller))

			result := enc.Step(context.Background(), "run")

			assert.Equal(t, tt.wantOutcome, result.Outcome)
			assert.Equal(t, tt.wantDamage, result.Retaliated)
			if tt.wantDamage {
				assert.Equal(t, entity.StartHealth-3, player.Health)
				assert.Contains(t, result.Messages, "Escape failed!")
			} else {
				assert.Equal(t, entity.StartHealth, player.Health)
				assert.Contains(t, result.Messages, "You escaped!")
			}
			assert.Equal(t, 9, enemy.HP)
		})
	}
}

func TestHealWithoutPotionsIsFree(t *testing.T) {
	enc, player, _, roller := newFight(t, 9, 3)
	player.Potions = 0
	player.Health = 10

	result := enc.Step(context.Background(), "heal")

	assert.Equal(t, Ongoing, result.Outcome)
	assert.False(t, result.Retaliated)
	assert.Equal(t, 10, player.Health)
	assert.Equal(t, []string{"No potions left."}, result.Messages)
	assert.Empty(t, roller.Calls())
}

func TestHealCappedThenRetaliation(t *testing.T) {
	// heal rolls [4,8] on a d5; face 5 -> 8, capped at 22 on floor 1
	enc, player, _, _ := newFight(t, 9, 2, 5, 1)
	player.Health = 20

	result := enc.Step(context.Background(), "heal")

	assert.Equal(t, 2, result.Healing)
	assert.True(t, result.Retaliated)
	assert.Equal(t, entity.StartPotions-1, player.Potions)
	// enemy atk 2 rolls [1,3]; face 1 -> 1 damage
	assert.Equal(t, 21, player.Health)
	assert.LessOrEqual(t, player.Health, entity.HealthCap(1))
}

func TestUnknownActionIsNoop(t *testing.T) {
	enc, player, enemy, roller := newFight(t, 9, 3)

	result := enc.Step(context.Background(), "dance")

	assert.Equal(t, Ongoing, result.Outcome)
	assert.Equal(t, []string{"Unknown action."}, result.Messages)
	assert.Equal(t, entity.StartHealth, player.Health)
	assert.Equal(t, 9, enemy.HP)
	assert.Empty(t, roller.Calls())
}

func TestLowHealthPlayerFalls(t *testing.T) {
	// health 1 against a tough enemy; any retaliation is lethal
	enc, player, enemy, _ := newFight(t, 20, 2, 1, 1)
	player.Health = 1

	result := enc.Step(context.Background(), "attack")

	assert.Equal(t, PlayerLost, result.Outcome)
	assert.Equal(t, PlayerLost, enc.Outcome())
	assert.True(t, enemy.IsAlive())
	assert.Contains(t, result.Messages, "You fall in battle...")
}

func TestStepAfterEndDoesNothing(t *testing.T) {
	enc, player, _, roller := newFight(t, 9, 3, 1)

	first := enc.Step(context.Background(), "run")
	require.Equal(t, PlayerFled, first.Outcome)
	used := len(roller.Calls())

	second := enc.Step(context.Background(), "attack")
	assert.Equal(t, PlayerFled, second.Outcome)
	assert.Empty(t, second.Messages)
	assert.Len(t, roller.Calls(), used)
	assert.Equal(t, entity.StartHealth, player.Health)
	assert.Equal(t, 1, enc.Turns())
}

func TestArticle(t *testing.T) {
	assert.Equal(t, "A Goblin", article("Goblin"))
	assert.Equal(t, "An Orc", article("Orc"))
	assert.Equal(t, "An enemy", article(""))
}
