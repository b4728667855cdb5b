package abi

import (
	"encoding/hex"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const transferHex = "0000000000855c340000000000000e3d" +
	"10270000000000000453595300000000" +
	"026869"

func transferValue() map[string]interface{} {
	return map[string]interface{}{
		"from":     "alice",
		"to":       "bob",
		"quantity": "1.0000 SYS",
		"memo":     "hi",
	}
}

func TestSerializeActionData(t *testing.T) {
	contract := compileToken(t)
	data, err := contract.SerializeActionData("transfer", transferValue())
	require.NoError(t, err)
	require.Equal(t, transferHex, data)
}

func TestDeserializeActionData(t *testing.T) {
	contract := compileToken(t)

	decoded, err := contract.DeserializeActionData("transfer", transferHex)
	require.NoError(t, err)
	require.Equal(t, transferValue(), decoded)

	// Raw bytes are accepted as well as hex text.
	raw, err := hex.DecodeString(transferHex)
	require.NoError(t, err)
	decoded, err = contract.DeserializeActionData("transfer", raw)
	require.NoError(t, err)
	require.Equal(t, transferValue(), decoded)
}

func TestSerializeAction(t *testing.T) {
	contract := compileToken(t)
	auth := []PermissionLevel{{Actor: "alice", Permission: "active"}}

	act, err := contract.SerializeAction("eosio.token", "transfer", auth, transferValue())
	require.NoError(t, err)
	require.Equal(t, "eosio.token", act.Account)
	require.Equal(t, "transfer", act.Name)
	require.Equal(t, auth, act.Authorization)
	require.Equal(t, transferHex, act.Data)

	decoded, err := contract.DeserializeAction(act)
	require.NoError(t, err)
	require.Equal(t, transferValue(), decoded)
}

func TestActionType_Unknown(t *testing.T) {
	contract := compileToken(t)
	_, err := contract.ActionType("burn")
	require.Equal(t, ErrUnknownAction, errors.Cause(err))
	_, err = contract.SerializeActionData("burn", nil)
	require.Equal(t, ErrUnknownAction, errors.Cause(err))
}

func TestDeserializeActionData_BadPayload(t *testing.T) {
	contract := compileToken(t)
	_, err := contract.DeserializeActionData("transfer", "zz")
	require.Error(t, err)
	_, err = contract.DeserializeActionData("transfer", 42)
	require.Error(t, err)
	// Truncated payload surfaces the underlying buffer error.
	_, err = contract.DeserializeActionData("transfer", "0000")
	require.Error(t, err)
}
