package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestRequestLog_DetailsRoundTrip(t *testing.T) {
	db := setupTestDB(t, "request_log", &RequestLog{})

	entry := RequestLog{
		RequestID: "rid-1",
		Method:    "GET",
		Path:      "/doctor-edit/1",
		Status:    404,
		Details:   datatypes.JSON(`{"route":"/doctor-edit/:id"}`),
	}
	require.NoError(t, db.Create(&entry).Error)
	assert.False(t, entry.CreatedAt.IsZero())

	var found RequestLog
	require.NoError(t, db.First(&found, entry.ID).Error)

	var details map[string]string
	require.NoError(t, json.Unmarshal(found.Details, &details))
	assert.Equal(t, "/doctor-edit/:id", details["route"])
}
