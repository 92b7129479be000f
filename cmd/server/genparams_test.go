package main

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/colorsort-server/internal/levels"
)

func TestDecodeGenParams(t *testing.T) {
	query := url.Values{
		"number":      {"12"},
		"steps":       {"30"},
		"strategy":    {"per-source"},
		"unknown_key": {"ignored"},
	}

	params, err := decodeGenParams(query)
	require.NoError(t, err)
	assert.Equal(t, 12, params.Number)
	assert.Equal(t, 30, params.Steps)
	assert.Equal(t, "per-source", params.Strategy)

	_, err = decodeGenParams(url.Values{})
	assert.Error(t, err, "number is required")
}

func TestGenParamsSettings(t *testing.T) {
	// schedule position fills whatever the query leaves unset
	params := GenParams{Number: 12, Steps: 30}
	assert.Equal(t, levels.Settings{
		BasesCount: 4, // schedule value at level 12
		BaseHeight: 5,
		Steps:      30, // explicit override wins
	}, params.settings())
}
