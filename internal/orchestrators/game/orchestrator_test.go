package game

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fadedcity/prismbot/internal/chat"
	chatmock "github.com/fadedcity/prismbot/internal/chat/mock"
	"github.com/fadedcity/prismbot/internal/command"
	"github.com/fadedcity/prismbot/internal/dice"
	"github.com/fadedcity/prismbot/internal/entities"
	"github.com/fadedcity/prismbot/internal/errors"
	"github.com/fadedcity/prismbot/internal/pkg/idgen"
	"github.com/fadedcity/prismbot/internal/prism"
	"github.com/fadedcity/prismbot/internal/repositories/character"
	charactermock "github.com/fadedcity/prismbot/internal/repositories/character/mock"
	"github.com/fadedcity/prismbot/internal/repositories/reroll"
)

// scriptedRoller replays fixed draws, then keeps returning 1.
type scriptedRoller struct {
	draws []int
	idx   int
}

func (r *scriptedRoller) Roll(size int) (int, error) {
	if r.idx >= len(r.draws) {
		return 1, nil
	}
	draw := r.draws[r.idx]
	r.idx++
	if draw > size {
		draw = size
	}
	return draw, nil
}

func (r *scriptedRoller) RollN(count, size int) ([]int, error) {
	results := make([]int, count)
	for i := range results {
		d, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = d
	}
	return results, nil
}

func testScenario() *entities.Scenario {
	return &entities.Scenario{
		ID:    "test",
		Name:  "Test Table",
		Rooms: []string{"table"},
		Commands: []string{
			"charcreate", "chardelete", "charselect", "charpassword", "charedit",
			"ap", "inventory", "pickup", "drop",
			"prism", "prismadd", "prismremove", "refresh", "roll", "help",
		},
		Prisms: map[string]entities.PrismDefinition{
			"Focus": {Type: string(prism.KindOutput), Tier: 2},
			"Veil":  {Type: string(prism.KindFaker)},
		},
	}
}

func testSheets() *character.PlayerSheets {
	return &character.PlayerSheets{
		GuildID: "guild-1",
		UserID:  "user-1",
		Active:  "jane",
		Characters: map[string]*entities.Character{
			"jane": {
				ID:   "char_001",
				Name: "Jane",
				Abilities: entities.AbilityScores{
					Force: 3,
				},
				Prisms: []string{"Basic", "Force", "Focus", "Veil"},
			},
		},
	}
}

type testDeps struct {
	characterRepo *charactermock.MockRepository
	messenger     *chatmock.MockMessenger
	directory     *chatmock.MockDirectory
	rerollRepo    reroll.Repository
}

func newTestOrchestrator(t *testing.T, ctrl *gomock.Controller, draws []int) (Service, *testDeps) {
	t.Helper()

	deps := &testDeps{
		characterRepo: charactermock.NewMockRepository(ctrl),
		messenger:     chatmock.NewMockMessenger(ctrl),
		directory:     chatmock.NewMockDirectory(ctrl),
		rerollRepo:    reroll.NewMemory(nil),
	}

	scenario := testScenario()
	prisms, err := prism.NewSet(scenario.Prisms)
	require.NoError(t, err)

	o, err := NewOrchestrator(&Config{
		Messenger:     deps.messenger,
		Directory:     deps.directory,
		CharacterRepo: deps.characterRepo,
		RerollRepo:    deps.rerollRepo,
		Resolver:      dice.NewResolver(&dice.Config{Roller: &scriptedRoller{draws: draws}}),
		Prisms:        prisms,
		Scenario:      scenario,
		IDGenerator:   idgen.NewSequential("char"),
	})
	require.NoError(t, err)

	return o, deps
}

func expectSheets(deps *testDeps) {
	deps.characterRepo.EXPECT().
		Get(gomock.Any(), character.GetInput{GuildID: "guild-1", UserID: "user-1"}).
		DoAndReturn(func(_ context.Context, _ character.GetInput) (*character.GetOutput, error) {
			return &character.GetOutput{Sheets: testSheets()}, nil
		}).
		AnyTimes()
}

func TestNewOrchestrator_Validation(t *testing.T) {
	_, err := NewOrchestrator(&Config{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestRollPrisms_EndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	o, deps := newTestOrchestrator(t, ctrl, []int{4, 5, 6})
	expectSheets(deps)

	output, err := o.RollPrisms(context.Background(), &RollPrismsInput{
		GuildID: "guild-1",
		UserID:  "user-1",
		Tokens:  []string{"Basic", "Force"},
	})
	require.NoError(t, err)

	// Basic contributes zero dice (tier-0 output); Force adds the ability
	// score of 3.
	assert.Equal(t, []int{4, 5, 6}, output.Result.Dice)
	assert.Equal(t, 0, output.Result.Modifier)
	assert.Equal(t, 15, output.Result.Total())
	assert.Equal(t, 0, output.Result.Rerolls)
	assert.Equal(t, []string{"Basic", "Force"}, output.Tokens)
}

func TestRollPrisms_ForcedRequiresFaker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	o, deps := newTestOrchestrator(t, ctrl, nil)
	expectSheets(deps)

	_, err := o.RollPrisms(context.Background(), &RollPrismsInput{
		GuildID: "guild-1",
		UserID:  "user-1",
		Tokens:  []string{"Basic", "Force", "=18"},
	})
	require.Error(t, err)
	assert.True(t, errors.IsCommand(err))
}

func TestRollPrisms_ForcedWithFaker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	o, deps := newTestOrchestrator(t, ctrl, nil)
	expectSheets(deps)

	output, err := o.RollPrisms(context.Background(), &RollPrismsInput{
		GuildID: "guild-1",
		UserID:  "user-1",
		Tokens:  []string{"Veil:x", "Force", "=15"},
	})
	require.NoError(t, err)

	assert.Equal(t, 15, output.Result.Total())
	for _, d := range output.Result.Dice {
		assert.GreaterOrEqual(t, d, 1)
		assert.LessOrEqual(t, d, dice.Faces)
	}
	// The forced token is not part of the replayable invocation.
	assert.Equal(t, []string{"Veil:x", "Force"}, output.Tokens)
}

func TestRollPrisms_UnownedPrism(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	o, deps := newTestOrchestrator(t, ctrl, nil)
	expectSheets(deps)

	_, err := o.RollPrisms(context.Background(), &RollPrismsInput{
		GuildID: "guild-1",
		UserID:  "user-1",
		Tokens:  []string{"Wits"},
	})
	require.Error(t, err)
	assert.True(t, errors.IsCommand(err))
}

func TestRollPrisms_NoPrisms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	o, deps := newTestOrchestrator(t, ctrl, nil)
	expectSheets(deps)

	_, err := o.RollPrisms(context.Background(), &RollPrismsInput{
		GuildID: "guild-1",
		UserID:  "user-1",
		Tokens:  []string{"=12"},
	})
	require.Error(t, err)
	assert.True(t, errors.IsCommand(err))
}

func TestHandleReaction_RerollFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	o, deps := newTestOrchestrator(t, ctrl, nil)
	expectSheets(deps)

	sent := 0
	deps.messenger.EXPECT().
		SendMessage(gomock.Any(), "chan-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string) (string, error) {
			sent++
			return fmt.Sprintf("roll-%d", sent), nil
		}).
		AnyTimes()
	deps.messenger.EXPECT().
		React(gomock.Any(), "chan-1", gomock.Any(), RerollEmoji).
		Return(nil).
		AnyTimes()

	registry := command.NewRegistry("!")
	require.NoError(t, o.RegisterCommands(registry))

	dispatcher, err := command.NewDispatcher(&command.DispatcherConfig{
		Registry:   registry,
		Authorizer: o,
		Messenger:  deps.messenger,
	})
	require.NoError(t, err)

	msg := &chat.Message{
		ID:        "msg-1",
		GuildID:   "guild-1",
		ChannelID: "chan-1",
		Room:      "table",
		Author:    chat.User{ID: "user-1", Name: "Alex"},
		Content:   "!prism Focus Force",
	}

	ctx := context.Background()
	handled, err := dispatcher.HandleMessage(ctx, msg)
	require.NoError(t, err)
	require.True(t, handled)
	require.Equal(t, 1, sent)

	// A reaction from another user never consumes the session.
	consumed, err := o.HandleReaction(ctx, &chat.Reaction{
		MessageID: "roll-1", ChannelID: "chan-1", GuildID: "guild-1",
		UserID: "user-2", Emoji: RerollEmoji,
	})
	require.NoError(t, err)
	assert.False(t, consumed)

	// The initiator's reaction replays the roll with one fewer token,
	// which still leaves one and registers a new session.
	consumed, err = o.HandleReaction(ctx, &chat.Reaction{
		MessageID: "roll-1", ChannelID: "chan-1", GuildID: "guild-1",
		UserID: "user-1", Emoji: RerollEmoji,
	})
	require.NoError(t, err)
	assert.True(t, consumed)
	assert.Equal(t, 2, sent)

	// One-shot: the original session is gone.
	consumed, err = o.HandleReaction(ctx, &chat.Reaction{
		MessageID: "roll-1", ChannelID: "chan-1", GuildID: "guild-1",
		UserID: "user-1", Emoji: RerollEmoji,
	})
	require.NoError(t, err)
	assert.False(t, consumed)

	// The replay's own session burns the last token; no further session
	// is registered.
	consumed, err = o.HandleReaction(ctx, &chat.Reaction{
		MessageID: "roll-2", ChannelID: "chan-1", GuildID: "guild-1",
		UserID: "user-1", Emoji: RerollEmoji,
	})
	require.NoError(t, err)
	assert.True(t, consumed)
	assert.Equal(t, 3, sent)

	consumed, err = o.HandleReaction(ctx, &chat.Reaction{
		MessageID: "roll-3", ChannelID: "chan-1", GuildID: "guild-1",
		UserID: "user-1", Emoji: RerollEmoji,
	})
	require.NoError(t, err)
	assert.False(t, consumed)
}

func TestHandleReaction_IgnoresOtherEmoji(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	o, _ := newTestOrchestrator(t, ctrl, nil)

	consumed, err := o.HandleReaction(context.Background(), &chat.Reaction{
		MessageID: "roll-1", UserID: "user-1", Emoji: "👍",
	})
	require.NoError(t, err)
	assert.False(t, consumed)
}

func TestHandleCharCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	o, deps := newTestOrchestrator(t, ctrl, nil)

	deps.characterRepo.EXPECT().
		Get(gomock.Any(), character.GetInput{GuildID: "guild-1", UserID: "user-1"}).
		Return(nil, errors.NotFound("no sheets"))
	deps.characterRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input character.SaveInput) (*character.SaveOutput, error) {
			require.Equal(t, "jane doe", input.Sheets.Active)
			c := input.Sheets.Characters["jane doe"]
			require.NotNil(t, c)
			assert.Equal(t, "Jane Doe", c.Name)
			assert.Equal(t, prism.StandardNames(), c.Prisms)
			return &character.SaveOutput{Sheets: input.Sheets}, nil
		})
	deps.messenger.EXPECT().
		SendMessage(gomock.Any(), "chan-1", gomock.Any()).
		Return("msg-2", nil)

	msg := &chat.Message{
		ID: "msg-1", GuildID: "guild-1", ChannelID: "chan-1", Room: "table",
		Author: chat.User{ID: "user-1", Name: "Alex"},
	}
	inv := command.NewInvocation(msg, map[string]any{"name": "Jane Doe"})

	err := o.(*orchestrator).handleCharCreate(context.Background(), inv)
	require.NoError(t, err)
}

func TestHandleCharCreate_RejectsBadName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	o, _ := newTestOrchestrator(t, ctrl, nil)

	msg := &chat.Message{
		ID: "msg-1", GuildID: "guild-1", ChannelID: "chan-1", Room: "table",
		Author: chat.User{ID: "user-1", Name: "Alex"},
	}
	inv := command.NewInvocation(msg, map[string]any{"name": "Jane@Doe"})

	err := o.(*orchestrator).handleCharCreate(context.Background(), inv)
	require.Error(t, err)
	assert.True(t, errors.IsCommand(err))
}

func TestHandleCharEdit_Rules(t *testing.T) {
	tests := []struct {
		name      string
		attribute string
		value     string
		wantErr   bool
		check     func(t *testing.T, c *entities.Character)
	}{
		{
			name: "age", attribute: "age", value: "27",
			check: func(t *testing.T, c *entities.Character) { assert.Equal(t, 27, c.Age) },
		},
		{name: "negative age", attribute: "age", value: "-1", wantErr: true},
		{
			name: "ability", attribute: "wits", value: "4",
			check: func(t *testing.T, c *entities.Character) { assert.Equal(t, 4, c.Abilities.Wits) },
		},
		{name: "negative ability", attribute: "wits", value: "-2", wantErr: true},
		{name: "unknown attribute", attribute: "luck", value: "3", wantErr: true},
		{
			name: "status", attribute: "status", value: `ok, "really"?`,
			check: func(t *testing.T, c *entities.Character) { assert.Equal(t, `ok, "really"?`, c.Status) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			o, deps := newTestOrchestrator(t, ctrl, nil)
			expectSheets(deps)

			var saved *character.PlayerSheets
			deps.characterRepo.EXPECT().
				Save(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, input character.SaveInput) (*character.SaveOutput, error) {
					saved = input.Sheets
					return &character.SaveOutput{Sheets: input.Sheets}, nil
				}).
				AnyTimes()
			deps.messenger.EXPECT().
				SendMessage(gomock.Any(), "chan-1", gomock.Any()).
				Return("msg-2", nil).
				AnyTimes()

			msg := &chat.Message{
				ID: "msg-1", GuildID: "guild-1", ChannelID: "chan-1", Room: "table",
				Author: chat.User{ID: "user-1", Name: "Alex"},
			}
			inv := command.NewInvocation(msg, map[string]any{
				"attribute": tt.attribute,
				"value":     tt.value,
			})

			err := o.(*orchestrator).handleCharEdit(context.Background(), inv)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCommand(err))
				return
			}
			require.NoError(t, err)
			require.NotNil(t, saved)
			tt.check(t, saved.Characters["jane"])
		})
	}
}

func TestAuthorizer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	o, deps := newTestOrchestrator(t, ctrl, nil)

	deps.directory.EXPECT().
		IsPrivileged(gomock.Any(), "guild-1", "user-1").
		Return(true, nil)

	privileged, err := o.IsPrivileged(context.Background(), "guild-1", "user-1")
	require.NoError(t, err)
	assert.True(t, privileged)

	expectSheets(deps)
	active, err := o.HasActiveCharacter(context.Background(), "guild-1", "user-1")
	require.NoError(t, err)
	assert.True(t, active)

	deps.characterRepo.EXPECT().
		Get(gomock.Any(), character.GetInput{GuildID: "guild-1", UserID: "user-2"}).
		Return(nil, errors.NotFound("no sheets"))
	active, err = o.HasActiveCharacter(context.Background(), "guild-1", "user-2")
	require.NoError(t, err)
	assert.False(t, active)

	assert.True(t, o.RoomInScenario("table"))
	assert.False(t, o.RoomInScenario("void"))
}

func grantSheets() *character.PlayerSheets {
	return &character.PlayerSheets{
		GuildID: "guild-1",
		UserID:  "user-2",
		Active:  "jane",
		Characters: map[string]*entities.Character{
			"jane":         {ID: "char_010", Name: "Jane", Prisms: []string{"Basic"}},
			"marcus thorn": {ID: "char_011", Name: "Marcus Thorn", Prisms: []string{"Basic", "Focus"}},
		},
	}
}

func grantMessage() *chat.Message {
	return &chat.Message{
		ID: "msg-1", GuildID: "guild-1", ChannelID: "chan-1", Room: "table",
		Author:   chat.User{ID: "gm-1", Name: "GM"},
		Mentions: []chat.User{{ID: "user-2", Name: "Sam"}},
	}
}

func TestHandlePrismAdd_TargetsNamedCharacter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	o, deps := newTestOrchestrator(t, ctrl, nil)

	deps.characterRepo.EXPECT().
		Get(gomock.Any(), character.GetInput{GuildID: "guild-1", UserID: "user-2"}).
		Return(&character.GetOutput{Sheets: grantSheets()}, nil)

	var saved *character.PlayerSheets
	deps.characterRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input character.SaveInput) (*character.SaveOutput, error) {
			saved = input.Sheets
			return &character.SaveOutput{Sheets: input.Sheets}, nil
		})

	var reply string
	deps.messenger.EXPECT().
		SendMessage(gomock.Any(), "chan-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, content string) (string, error) {
			reply = content
			return "msg-2", nil
		})

	// The name prefix targets Marcus even though Jane is the active
	// character.
	inv := command.NewInvocation(grantMessage(), map[string]any{
		"prism":     "Force",
		"character": "marc",
		"player":    "<@user-2>",
	})

	err := o.(*orchestrator).handlePrismAdd(context.Background(), inv)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, []string{"Basic", "Focus", "Force"}, saved.Characters["marcus thorn"].Prisms)
	assert.Equal(t, []string{"Basic"}, saved.Characters["jane"].Prisms)
	assert.Contains(t, reply, chat.Mention("user-2"))
	assert.Contains(t, reply, "Marcus Thorn")
}

func TestHandlePrismAdd_UnknownCharacter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	o, deps := newTestOrchestrator(t, ctrl, nil)

	deps.characterRepo.EXPECT().
		Get(gomock.Any(), character.GetInput{GuildID: "guild-1", UserID: "user-2"}).
		Return(&character.GetOutput{Sheets: grantSheets()}, nil)

	inv := command.NewInvocation(grantMessage(), map[string]any{
		"prism":     "Force",
		"character": "nobody",
		"player":    "<@user-2>",
	})

	err := o.(*orchestrator).handlePrismAdd(context.Background(), inv)
	require.Error(t, err)
	assert.True(t, errors.IsCommand(err))
}

func TestHandlePrismAdd_RequiresMention(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	o, _ := newTestOrchestrator(t, ctrl, nil)

	msg := grantMessage()
	msg.Mentions = nil
	inv := command.NewInvocation(msg, map[string]any{
		"prism":     "Force",
		"character": "marc",
		"player":    "",
	})

	err := o.(*orchestrator).handlePrismAdd(context.Background(), inv)
	require.Error(t, err)
	assert.True(t, errors.IsCommand(err))
}

func TestHandlePrismRemove_TargetsNamedCharacter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	o, deps := newTestOrchestrator(t, ctrl, nil)

	deps.characterRepo.EXPECT().
		Get(gomock.Any(), character.GetInput{GuildID: "guild-1", UserID: "user-2"}).
		Return(&character.GetOutput{Sheets: grantSheets()}, nil)

	var saved *character.PlayerSheets
	deps.characterRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input character.SaveInput) (*character.SaveOutput, error) {
			saved = input.Sheets
			return &character.SaveOutput{Sheets: input.Sheets}, nil
		})
	deps.messenger.EXPECT().
		SendMessage(gomock.Any(), "chan-1", gomock.Any()).
		Return("msg-2", nil)

	inv := command.NewInvocation(grantMessage(), map[string]any{
		"prism":     "Focus",
		"character": "marc",
		"player":    "<@user-2>",
	})

	err := o.(*orchestrator).handlePrismRemove(context.Background(), inv)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, []string{"Basic"}, saved.Characters["marcus thorn"].Prisms)
}

func TestHandleActionPoints_SignedAdjustments(t *testing.T) {
	tests := []struct {
		name        string
		points      int
		wantErr     bool
		wantActions int
		wantReply   string
	}{
		{name: "view", points: 0, wantActions: 5, wantReply: "has 5 action points"},
		{name: "spend", points: 2, wantActions: 3, wantReply: "spends 2 action points, 3 remaining"},
		{name: "recover", points: -3, wantActions: 8, wantReply: "recovers 3 action points, 8 available"},
		{name: "overspend", points: 6, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			o, deps := newTestOrchestrator(t, ctrl, nil)

			sheets := testSheets()
			sheets.Characters["jane"].Actions = 5
			deps.characterRepo.EXPECT().
				Get(gomock.Any(), character.GetInput{GuildID: "guild-1", UserID: "user-1"}).
				Return(&character.GetOutput{Sheets: sheets}, nil)
			deps.characterRepo.EXPECT().
				Save(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, input character.SaveInput) (*character.SaveOutput, error) {
					return &character.SaveOutput{Sheets: input.Sheets}, nil
				}).
				AnyTimes()

			var reply string
			deps.messenger.EXPECT().
				SendMessage(gomock.Any(), "chan-1", gomock.Any()).
				DoAndReturn(func(_ context.Context, _, content string) (string, error) {
					reply = content
					return "msg-2", nil
				}).
				AnyTimes()

			msg := &chat.Message{
				ID: "msg-1", GuildID: "guild-1", ChannelID: "chan-1", Room: "table",
				Author: chat.User{ID: "user-1", Name: "Alex"},
			}
			inv := command.NewInvocation(msg, map[string]any{"points": tt.points})

			err := o.(*orchestrator).handleActionPoints(context.Background(), inv)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCommand(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantActions, sheets.Characters["jane"].Actions)
			assert.Contains(t, reply, tt.wantReply)
		})
	}
}

func TestHandleCharPassword_RejectsBadCharset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	o, _ := newTestOrchestrator(t, ctrl, nil)

	msg := &chat.Message{
		ID: "msg-1", GuildID: "guild-1", ChannelID: "chan-1", Room: "table",
		Author: chat.User{ID: "user-1", Name: "Alex"},
	}

	for _, password := range []string{"", "p@ss word", "hunter-2"} {
		inv := command.NewInvocation(msg, map[string]any{"password": password})
		err := o.(*orchestrator).handleCharPassword(context.Background(), inv)
		require.Error(t, err, "password %q", password)
		assert.True(t, errors.IsCommand(err))
	}
}

func TestRegisterCommands_ScenarioAllowList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scenario := testScenario()
	scenario.Commands = []string{"prism", "roll"}
	prisms, err := prism.NewSet(scenario.Prisms)
	require.NoError(t, err)

	o, err := NewOrchestrator(&Config{
		Messenger:     chatmock.NewMockMessenger(ctrl),
		Directory:     chatmock.NewMockDirectory(ctrl),
		CharacterRepo: charactermock.NewMockRepository(ctrl),
		RerollRepo:    reroll.NewMemory(nil),
		Resolver:      dice.NewResolver(nil),
		Prisms:        prisms,
		Scenario:      scenario,
		IDGenerator:   idgen.NewSequential("char"),
	})
	require.NoError(t, err)

	registry := command.NewRegistry("!")
	require.NoError(t, o.RegisterCommands(registry))

	spec, ok := registry.Get("prism")
	require.True(t, ok)
	assert.True(t, spec.Enabled())

	spec, ok = registry.Get("refresh")
	require.True(t, ok)
	assert.False(t, spec.Enabled())
}
