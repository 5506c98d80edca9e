package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  *string `json:"name"  validate:"omitnil,min=1,max=5"`
	Count *int    `json:"count" validate:"omitnil,gt=0"`
	Kind  string  `json:"kind"  validate:"required,oneof=a b"`
}

func TestDecodeJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Luke","kind":"a"}`))
	var got sampleRequest
	require.NoError(t, DecodeJSON(req, &got))
	require.NotNil(t, got.Name)
	assert.Equal(t, "Luke", *got.Name)

	bad := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	assert.Error(t, DecodeJSON(bad, &got))
}

func TestValidationMessagesUseJSONNames(t *testing.T) {
	name := "Obi-Wan"
	count := 0
	err := ValidateRequest(&sampleRequest{Name: &name, Count: &count, Kind: "c"})
	require.Error(t, err)

	msgs := ValidationMessages(err)
	require.Len(t, msgs, 3)
	assert.Contains(t, msgs["name"], "at most 5")
	assert.Equal(t, "must be greater than 0", msgs["count"])
	assert.Equal(t, "must be one of: a b", msgs["kind"])

	assert.NoError(t, ValidateRequest(&sampleRequest{Kind: "b"}))
	assert.Nil(t, ValidationMessages(assert.AnError))
}
