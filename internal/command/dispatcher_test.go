package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fadedcity/prismbot/internal/chat"
	chatmock "github.com/fadedcity/prismbot/internal/chat/mock"
	"github.com/fadedcity/prismbot/internal/errors"
)

type stubAuthorizer struct {
	privileged bool
	active     bool
	roomOK     bool
}

func (a *stubAuthorizer) IsPrivileged(_ context.Context, _, _ string) (bool, error) {
	return a.privileged, nil
}

func (a *stubAuthorizer) HasActiveCharacter(_ context.Context, _, _ string) (bool, error) {
	return a.active, nil
}

func (a *stubAuthorizer) RoomInScenario(_ string) bool {
	return a.roomOK
}

func testMessage(content string) *chat.Message {
	return &chat.Message{
		ID:        "msg-1",
		GuildID:   "guild-1",
		ChannelID: "chan-1",
		Room:      "table",
		Author:    chat.User{ID: "user-1", Name: "Alex"},
		Content:   content,
	}
}

func newTestDispatcher(t *testing.T, registry *Registry, auth Authorizer, messenger chat.Messenger) *Dispatcher {
	t.Helper()
	d, err := NewDispatcher(&DispatcherConfig{
		Registry:   registry,
		Authorizer: auth,
		Messenger:  messenger,
	})
	require.NoError(t, err)
	return d
}

func TestDispatcher_IgnoresNonCommands(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	messenger := chatmock.NewMockMessenger(ctrl)
	registry := NewRegistry("!")
	d := newTestDispatcher(t, registry, &stubAuthorizer{roomOK: true}, messenger)

	handled, err := d.HandleMessage(context.Background(), testMessage("just chatting"))
	require.NoError(t, err)
	assert.False(t, handled)
}

func TestDispatcher_IgnoresUnknownCommands(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	messenger := chatmock.NewMockMessenger(ctrl)
	registry := NewRegistry("!")
	d := newTestDispatcher(t, registry, &stubAuthorizer{roomOK: true}, messenger)

	handled, err := d.HandleMessage(context.Background(), testMessage("!nosuch thing"))
	require.NoError(t, err)
	assert.False(t, handled)
}

func TestDispatcher_RunsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	messenger := chatmock.NewMockMessenger(ctrl)
	registry := NewRegistry("!")

	var got string
	require.NoError(t, registry.Register(&Spec{
		Name: "echo",
		Handler: func(_ context.Context, inv *Invocation) error {
			got = inv.String("text")
			return nil
		},
		Params: []ParamSpec{{Name: "text"}},
	}))
	registry.Enable([]string{"echo"})

	d := newTestDispatcher(t, registry, &stubAuthorizer{roomOK: true}, messenger)

	handled, err := d.HandleMessage(context.Background(), testMessage("!echo hello there"))
	require.NoError(t, err)
	assert.True(t, handled)
	assert.Equal(t, "hello there", got)
}

func TestDispatcher_DeletesInvocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	messenger := chatmock.NewMockMessenger(ctrl)
	messenger.EXPECT().DeleteMessage(gomock.Any(), "chan-1", "msg-1").Return(nil)

	registry := NewRegistry("!")
	require.NoError(t, registry.Register(&Spec{
		Name:             "secret",
		Handler:          func(_ context.Context, _ *Invocation) error { return nil },
		DeleteInvocation: true,
	}))
	registry.Enable([]string{"secret"})

	d := newTestDispatcher(t, registry, &stubAuthorizer{roomOK: true}, messenger)

	handled, err := d.HandleMessage(context.Background(), testMessage("!secret"))
	require.NoError(t, err)
	assert.True(t, handled)
}

func TestDispatcher_RoomGateIsSilent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	messenger := chatmock.NewMockMessenger(ctrl)
	registry := NewRegistry("!")

	called := false
	require.NoError(t, registry.Register(&Spec{
		Name:         "prism",
		Handler:      func(_ context.Context, _ *Invocation) error { called = true; return nil },
		RequiresRoom: true,
	}))
	registry.Enable([]string{"prism"})

	d := newTestDispatcher(t, registry, &stubAuthorizer{roomOK: false}, messenger)

	handled, err := d.HandleMessage(context.Background(), testMessage("!prism Basic"))
	require.NoError(t, err)
	assert.True(t, handled)
	assert.False(t, called)
}

func TestDispatcher_UnauthorizedAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	messenger := chatmock.NewMockMessenger(ctrl)
	messenger.EXPECT().
		SendMessage(gomock.Any(), "chan-1", "Alex is not authorised to use command !refresh").
		Return("msg-2", nil)
	messenger.EXPECT().React(gomock.Any(), "chan-1", "msg-1", FailureEmoji).Return(nil)

	registry := NewRegistry("!")
	require.NoError(t, registry.Register(&Spec{
		Name:          "refresh",
		Handler:       func(_ context.Context, _ *Invocation) error { return nil },
		RequiresAdmin: true,
	}))
	registry.Enable([]string{"refresh"})

	d := newTestDispatcher(t, registry, &stubAuthorizer{roomOK: true}, messenger)

	handled, err := d.HandleMessage(context.Background(), testMessage("!refresh 3"))
	require.NoError(t, err)
	assert.True(t, handled)
}

func TestDispatcher_NoActiveCharacter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	messenger := chatmock.NewMockMessenger(ctrl)
	messenger.EXPECT().
		SendMessage(gomock.Any(), "chan-1", "Alex has no active character for command !inventory").
		Return("msg-2", nil)
	messenger.EXPECT().React(gomock.Any(), "chan-1", "msg-1", FailureEmoji).Return(nil)

	registry := NewRegistry("!")
	require.NoError(t, registry.Register(&Spec{
		Name:              "inventory",
		Handler:           func(_ context.Context, _ *Invocation) error { return nil },
		RequiresCharacter: true,
	}))
	registry.Enable([]string{"inventory"})

	d := newTestDispatcher(t, registry, &stubAuthorizer{roomOK: true}, messenger)

	handled, err := d.HandleMessage(context.Background(), testMessage("!inventory"))
	require.NoError(t, err)
	assert.True(t, handled)
}

func TestDispatcher_DisabledCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	messenger := chatmock.NewMockMessenger(ctrl)
	messenger.EXPECT().
		SendMessage(gomock.Any(), "chan-1", "command !roll is disabled").
		Return("msg-2", nil)
	messenger.EXPECT().React(gomock.Any(), "chan-1", "msg-1", FailureEmoji).Return(nil)

	registry := NewRegistry("!")
	require.NoError(t, registry.Register(&Spec{
		Name:    "roll",
		Handler: func(_ context.Context, _ *Invocation) error { return nil },
	}))
	// No Enable call: the scenario does not allow this command.

	d := newTestDispatcher(t, registry, &stubAuthorizer{roomOK: true}, messenger)

	handled, err := d.HandleMessage(context.Background(), testMessage("!roll"))
	require.NoError(t, err)
	assert.True(t, handled)
}

func TestDispatcher_ParamErrorIsUserFacing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	messenger := chatmock.NewMockMessenger(ctrl)
	messenger.EXPECT().
		SendMessage(gomock.Any(), "chan-1", `missing required parameter "name"`).
		Return("msg-2", nil)
	messenger.EXPECT().React(gomock.Any(), "chan-1", "msg-1", FailureEmoji).Return(nil)

	registry := NewRegistry("!")
	require.NoError(t, registry.Register(&Spec{
		Name:    "charcreate",
		Handler: func(_ context.Context, _ *Invocation) error { return nil },
		Params:  []ParamSpec{{Name: "name"}},
	}))
	registry.Enable([]string{"charcreate"})

	d := newTestDispatcher(t, registry, &stubAuthorizer{roomOK: true}, messenger)

	handled, err := d.HandleMessage(context.Background(), testMessage("!charcreate"))
	require.NoError(t, err)
	assert.True(t, handled)
}

func TestDispatcher_InternalErrorIsNotEchoed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	messenger := chatmock.NewMockMessenger(ctrl)
	// Only the failure indicator, never the internal message.
	messenger.EXPECT().React(gomock.Any(), "chan-1", "msg-1", FailureEmoji).Return(nil)

	registry := NewRegistry("!")
	require.NoError(t, registry.Register(&Spec{
		Name: "boom",
		Handler: func(_ context.Context, _ *Invocation) error {
			return errors.Internal("redis exploded")
		},
	}))
	registry.Enable([]string{"boom"})

	d := newTestDispatcher(t, registry, &stubAuthorizer{roomOK: true}, messenger)

	handled, err := d.HandleMessage(context.Background(), testMessage("!boom"))
	require.NoError(t, err)
	assert.True(t, handled)
}
