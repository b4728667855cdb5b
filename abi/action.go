package abi

import (
	"encoding/hex"

	"abicodec/wire"

	"github.com/pkg/errors"
)

// PermissionLevel names an authorizing actor and permission. The codec
// carries authorization lists through unchanged.
type PermissionLevel struct {
	Actor      string `json:"actor"`
	Permission string `json:"permission"`
}

// Action wraps a serialized payload with its account, action name and
// authorization list.
type Action struct {
	Account       string            `json:"account"`
	Name          string            `json:"name"`
	Authorization []PermissionLevel `json:"authorization"`
	Data          string            `json:"data"`
}

// ActionType returns the resolved type of the named action.
func (c *Contract) ActionType(name string) (*Type, error) {
	t, ok := c.Actions[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAction, "action %q", name)
	}
	return t, nil
}

// SerializeActionData encodes value through the named action's type
// and returns the bytes as lowercase hex.
func (c *Contract) SerializeActionData(action string, value interface{}) (string, error) {
	t, err := c.ActionType(action)
	if err != nil {
		return "", err
	}
	buf := wire.NewBuffer()
	if err := Encode(t, buf, value); err != nil {
		return "", errors.Wrapf(err, "action %q", action)
	}
	return hex.EncodeToString(buf.Bytes()), nil
}

// DeserializeActionData decodes a payload for the named action. data
// may be a hex string or raw bytes.
func (c *Contract) DeserializeActionData(action string, data interface{}) (interface{}, error) {
	t, err := c.ActionType(action)
	if err != nil {
		return nil, err
	}
	var raw []byte
	switch d := data.(type) {
	case string:
		raw, err = hex.DecodeString(d)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid hex payload for action %q", action)
		}
	case []byte:
		raw = d
	default:
		return nil, errors.Errorf("abi: expected hex string or bytes, got %T", data)
	}
	value, err := Decode(t, wire.NewReadBuffer(raw))
	if err != nil {
		return nil, errors.Wrapf(err, "action %q", action)
	}
	return value, nil
}

// SerializeAction builds a complete Action around the encoded payload.
// The authorization list is attached as given.
func (c *Contract) SerializeAction(account, name string, authorization []PermissionLevel, value interface{}) (*Action, error) {
	data, err := c.SerializeActionData(name, value)
	if err != nil {
		return nil, err
	}
	return &Action{
		Account:       account,
		Name:          name,
		Authorization: authorization,
		Data:          data,
	}, nil
}

// DeserializeAction decodes act's payload back into a structured
// value.
func (c *Contract) DeserializeAction(act *Action) (interface{}, error) {
	return c.DeserializeActionData(act.Name, act.Data)
}
