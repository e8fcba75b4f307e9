package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestReading(t *testing.T) {
	out, err := run(t, "reading", "1990-07-23")
	require.NoError(t, err)
	assert.Equal(t, "♌ Leo (Fire), life path 4\n", out)

	out, err = run(t, "reading", "--json", "1999-09-09")
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Virgo", got["sign"])
	assert.EqualValues(t, 1, got["life_path_number"])

	_, err = run(t, "reading", "1990-02-30")
	assert.ErrorContains(t, err, "birth_date")
}

func TestLifePathAndDigitSum(t *testing.T) {
	out, err := run(t, "lifepath", "1992-11-29")
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)

	out, err = run(t, "digitsum", "1999")
	require.NoError(t, err)
	assert.Equal(t, "28\n", out)

	out, err = run(t, "digitsum", "--reduce", "1999")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	_, err = run(t, "digitsum", "-5")
	assert.Error(t, err)
}

func TestSigns(t *testing.T) {
	out, err := run(t, "signs")
	require.NoError(t, err)

	for _, sign := range []string{"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo", "Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces"} {
		assert.Contains(t, out, sign)
	}
	assert.Less(t, strings.Index(out, "Aries"), strings.Index(out, "Pisces"))
	assert.Contains(t, out, "March 21 - April 19")
}
