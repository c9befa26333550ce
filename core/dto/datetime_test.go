package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_DateTime_JSON(t *testing.T) {
	type payload struct {
		At  DateTime  `json:"at"`
		Opt *DateTime `json:"opt,omitempty"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"at":"2031-05-02 14:30:00"}`), &p))
	assert.Equal(t, time.Date(2031, 5, 2, 14, 30, 0, 0, time.UTC), p.At.Time)
	assert.Nil(t, p.Opt)

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":"2031-05-02 14:30:00"}`, string(out))
}

func Test_DateTime_RejectsOtherLayouts(t *testing.T) {
	var d DateTime
	err := json.Unmarshal([]byte(`"2031-05-02T14:30:00Z"`), &d)
	assert.Error(t, err)
}
