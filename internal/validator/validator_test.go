package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Count    int    `json:"count" validate:"gt=0"`
	Status   string `json:"status" validate:"omitempty,oneof=Wishlist Watching Finished"`
}

func TestValidate_Passes(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Username: "abc", Count: 1, Status: "Watching"})
	assert.NoError(t, err)
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Username: "", Count: 0})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "username")
	assert.Contains(t, vErr.Errors, "count")
	assert.NotContains(t, vErr.Errors, "Username")
}

func TestValidate_OneofMessage(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Username: "abc", Count: 1, Status: "Paused"})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors["status"], "Wishlist, Watching, Finished")
}
