package validator

import (
	"fmt"
	"strings"

	"github.com/abababa124444-cmd/arab-chat1/internal/api"
	"github.com/abababa124444-cmd/arab-chat1/internal/model"
)

const maxRoomNameLen = 100

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateCreateRoom(req *api.CreateRoomRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return model.ErrEmptyName
	}

	if len([]rune(name)) > maxRoomNameLen {
		return fmt.Errorf("room name exceeds maximum length of %d characters", maxRoomNameLen)
	}

	return nil
}

func (v *Validator) ValidateSendMessage(content string) error {
	if strings.TrimSpace(content) == "" {
		return model.ErrEmptyContent
	}

	return nil
}

func (v *Validator) ValidateGetOrCreateThread(req *api.GetOrCreateThreadRequest, callerID int64) error {
	if req.UserID <= 0 {
		return fmt.Errorf("user_id is required")
	}

	if req.UserID == callerID {
		return model.ErrSelfThread
	}

	return nil
}
