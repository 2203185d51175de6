package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobInput_MarshalOnlySetFields(t *testing.T) {
	in := JobInput{Title: Ptr("Electrician"), City: Ptr("Бишкек")}

	body, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Electrician","city":"Бишкек"}`, string(body))
}

func TestJobInput_FalseIsActiveIsSent(t *testing.T) {
	in := JobInput{IsActive: Ptr(false)}

	body, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"is_active":false}`, string(body))
}

func TestJobInput_Empty(t *testing.T) {
	body, err := json.Marshal(JobInput{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(body))
}

func TestNewJobInput_CopiesEditableFields(t *testing.T) {
	job := Job{
		ID:          7,
		Title:       "Повар",
		Description: "Смена 2/2",
		Category:    "Общепит",
		Subcategory: "Повар",
		City:        "Ош",
		Salary:      "40000",
		Phone:       "+996700000000",
		Company:     "Кафе",
		IsActive:    true,
		CreatedBy:   3,
		Source:      "admin",
	}

	body, err := json.Marshal(NewJobInput(job))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"title":"Повар",
		"description":"Смена 2/2",
		"category":"Общепит",
		"subcategory":"Повар",
		"city":"Ош",
		"salary":"40000",
		"phone":"+996700000000",
		"company":"Кафе",
		"is_active":true
	}`, string(body))
}

func TestJob_DecodeBackendPayload(t *testing.T) {
	raw := `{"id":1,"title":"Сварщик","is_active":true,"created_by":2,"source":"bot","created_at":"2026-01-02T03:04:05Z","extra":"ignored"}`

	var job Job
	require.NoError(t, json.Unmarshal([]byte(raw), &job))
	assert.Equal(t, int64(1), job.ID)
	assert.Equal(t, "Сварщик", job.Title)
	assert.True(t, job.IsActive)
	assert.Equal(t, "bot", job.Source)
	assert.Equal(t, 2026, job.CreatedAt.Year())
}
