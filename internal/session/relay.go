package session

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/abababa124444-cmd/arab-chat1/internal/model"
)

// Relay persists a message and publishes its frame to the conversation group.
// A failed publish is logged, not returned: the message is stored and pollers will see it.
type Relay struct {
	service     Service
	broadcaster Broadcaster
	sequencer   *Sequencer
}

func NewRelay(service Service, broadcaster Broadcaster, sequencer *Sequencer) *Relay {
	return &Relay{
		service:     service,
		broadcaster: broadcaster,
		sequencer:   sequencer,
	}
}

func (r *Relay) PostRoomMessage(ctx context.Context, roomSlug, authorName, content string) (*model.Message, error) {
	group := model.RoomGroup(roomSlug)

	var message *model.Message
	err := r.sequencer.Do(group, func() error {
		var err error
		message, err = r.service.AppendRoomMessage(ctx, roomSlug, authorName, content)
		if err != nil {
			return err
		}

		r.publish(ctx, group, model.NewRoomMessageFrame(*message))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return message, nil
}

func (r *Relay) PostThreadMessage(ctx context.Context, threadID int64, author model.User, content string) (*model.DirectMessage, error) {
	group := model.ThreadGroup(threadID)

	var message *model.DirectMessage
	err := r.sequencer.Do(group, func() error {
		var err error
		message, err = r.service.AppendThreadMessage(ctx, threadID, author, content)
		if err != nil {
			return err
		}

		r.publish(ctx, group, model.NewDirectMessageFrame(*message))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return message, nil
}

// publish runs detached from the caller's cancellation: once the message is stored it
// must reach the group even if the sender has gone away.
func (r *Relay) publish(ctx context.Context, group string, frame any) {
	ctx = context.WithoutCancel(ctx)
	logger := zerolog.Ctx(ctx).With().Str("func", "Relay.publish").Str("group", group).Logger()

	payload, err := json.Marshal(frame)
	if err != nil {
		logger.Error().Err(err).Msg("failed to encode frame")
		return
	}

	if err := r.broadcaster.Publish(ctx, group, payload); err != nil {
		logger.Error().Err(err).Msg("failed to publish frame, subscribers will catch up by polling")
	}
}
