package command

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fadedcity/prismbot/internal/chat"
	"github.com/fadedcity/prismbot/internal/errors"
)

// FailureEmoji marks a command message whose processing failed.
const FailureEmoji = "🚫"

// Authorizer answers the three authorization questions a command spec
// can ask. The game orchestrator implements it against the character
// store and the chat directory.
type Authorizer interface {
	IsPrivileged(ctx context.Context, guildID, userID string) (bool, error)
	HasActiveCharacter(ctx context.Context, guildID, userID string) (bool, error)
	RoomInScenario(room string) bool
}

// Dispatcher drives the per-message command state machine: prefix check,
// lookup, authorization, tokenization, binding, handler invocation, and
// the error boundary that decides what the user sees.
type Dispatcher struct {
	registry  *Registry
	auth      Authorizer
	messenger chat.Messenger
}

// DispatcherConfig holds the dependencies for the dispatcher
type DispatcherConfig struct {
	Registry   *Registry
	Authorizer Authorizer
	Messenger  chat.Messenger
}

// Validate ensures all required dependencies are provided
func (c *DispatcherConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Registry == nil {
		vb.RequiredField("Registry")
	}
	if c.Authorizer == nil {
		vb.RequiredField("Authorizer")
	}
	if c.Messenger == nil {
		vb.RequiredField("Messenger")
	}

	return vb.Build()
}

// NewDispatcher creates a dispatcher with the provided dependencies
func NewDispatcher(cfg *DispatcherConfig) (*Dispatcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Dispatcher{
		registry:  cfg.Registry,
		auth:      cfg.Authorizer,
		messenger: cfg.Messenger,
	}, nil
}

// HandleMessage processes one inbound chat message. It reports whether
// the message was treated as a command; text without the prefix and
// unregistered names are ignored, not errors. All command failures are
// resolved here: user-facing errors are echoed back with a failure
// indicator, anything else is logged and indicated generically.
func (d *Dispatcher) HandleMessage(ctx context.Context, msg *chat.Message) (bool, error) {
	prefix := d.registry.Prefix()
	if !strings.HasPrefix(msg.Content, prefix) {
		return false, nil
	}

	name, paramText, _ := strings.Cut(msg.Content[len(prefix):], " ")
	spec, ok := d.registry.Get(name)
	if !ok {
		return false, nil
	}

	if spec.RequiresRoom && !d.auth.RoomInScenario(msg.Room) {
		// Deliberate no-op: room-gated commands outside the scenario are
		// swallowed without output.
		slog.Debug("command outside scenario rooms",
			"command", prefix+name,
			"room", msg.Room,
		)
		return true, nil
	}

	err := d.run(ctx, spec, msg, paramText)
	if err == nil {
		slog.Info("command processed",
			"command", prefix+name,
			"user_id", msg.Author.ID,
			"user", msg.Author.Name,
		)
		if spec.DeleteInvocation {
			if err := d.messenger.DeleteMessage(ctx, msg.ChannelID, msg.ID); err != nil {
				slog.Warn("failed to delete command message",
					"command", prefix+name,
					"message_id", msg.ID,
					"error", err,
				)
			}
		}
		return true, nil
	}

	if errors.IsUserFacing(err) {
		if _, sendErr := d.messenger.SendMessage(ctx, msg.ChannelID, errors.GetMessage(err)); sendErr != nil {
			slog.Error("failed to report command error",
				"command", prefix+name,
				"error", sendErr,
			)
		}
	} else {
		slog.Error("failed to process command",
			"command", prefix+name,
			"user_id", msg.Author.ID,
			"user", msg.Author.Name,
			"error", err,
		)
	}
	if reactErr := d.messenger.React(ctx, msg.ChannelID, msg.ID, FailureEmoji); reactErr != nil {
		slog.Warn("failed to add failure indicator", "message_id", msg.ID, "error", reactErr)
	}
	return true, nil
}

// run performs authorization, tokenization, binding, and the handler call.
func (d *Dispatcher) run(ctx context.Context, spec *Spec, msg *chat.Message, paramText string) error {
	prefix := d.registry.Prefix()

	if spec.RequiresAdmin {
		privileged, err := d.auth.IsPrivileged(ctx, msg.GuildID, msg.Author.ID)
		if err != nil {
			return errors.Wrap(err, "failed to check privilege")
		}
		if !privileged {
			return errors.Unauthorizedf(
				"%s is not authorised to use command %s%s", msg.Author.Name, prefix, spec.Name)
		}
	}

	if spec.RequiresCharacter {
		active, err := d.auth.HasActiveCharacter(ctx, msg.GuildID, msg.Author.ID)
		if err != nil {
			return errors.Wrap(err, "failed to check active character")
		}
		if !active {
			return errors.Unauthorizedf(
				"%s has no active character for command %s%s", msg.Author.Name, prefix, spec.Name)
		}
	}

	if !spec.Enabled() {
		return errors.Commandf("command %s%s is disabled", prefix, spec.Name)
	}

	raw, err := Tokenize(paramText, spec.Params)
	if err != nil {
		return err
	}

	args := make(map[string]any, len(spec.Params))
	for i := range spec.Params {
		value, err := spec.Params[i].Bind(raw[i])
		if err != nil {
			return err
		}
		args[spec.Params[i].Name] = value
	}

	return spec.Handler(ctx, NewInvocation(msg, args))
}
