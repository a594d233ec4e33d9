package validator

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name     string `json:"name" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=1,lte=100"`
	Method   string `json:"method" validate:"omitempty,oneof=standard express"`
	Internal string `json:"-"`
}

func TestValidate_Success(t *testing.T) {
	err := Validate(testStruct{Name: "Alphonso", Quantity: 2})
	assert.NoError(t, err)
}

func TestValidate_UsesJSONFieldNames(t *testing.T) {
	err := Validate(testStruct{Quantity: 2})
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	fields := valErr.Fields()
	assert.Equal(t, "is required", fields["name"])
	assert.NotContains(t, fields, "Name")
}

func TestValidate_OutOfRange(t *testing.T) {
	err := Validate(testStruct{Name: "Alphonso", Quantity: 101})
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Fields()["quantity"], "100")
}

func TestValidate_OneOf(t *testing.T) {
	err := Validate(testStruct{Name: "Alphonso", Quantity: 1, Method: "drone"})
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "must be one of: standard express", valErr.Fields()["method"])
}

func TestValidationError_MessagesSorted(t *testing.T) {
	err := Validate(testStruct{Quantity: 0})
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, []string{
		"name is required",
		"quantity must be greater than or equal to 1",
	}, valErr.Messages())
	assert.Contains(t, valErr.Error(), "field 'name' is required")
}

func TestDecodeAndValidate_Success(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Kent","quantity":3}`))

	var dst testStruct
	require.NoError(t, DecodeAndValidate(req, &dst))
	assert.Equal(t, "Kent", dst.Name)
	assert.Equal(t, 3, dst.Quantity)
}

func TestDecodeAndValidate_BadJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))

	var dst testStruct
	err := DecodeAndValidate(req, &dst)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode request body")
}
