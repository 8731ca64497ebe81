package handler_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/harborlight/orphanage-api/internal/dto"
	"github.com/harborlight/orphanage-api/internal/models"
)

func TestActivityHandlerCreateStartsPlanned(t *testing.T) {
	app, db := setupTestApp(t)
	staff := seedTestStaff(t, db)

	resp := performJSON(t, app, http.MethodPost, "/api/v1/activities", map[string]interface{}{
		"title":            "Football Afternoon",
		"activity_date":    time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		"max_participants": 10,
		"created_by":       staff.ID,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var payload struct {
		Success bool                 `json:"success"`
		Message string               `json:"message"`
		Data    dto.ActivityResponse `json:"data"`
	}
	decodeResponse(t, resp, &payload)
	require.True(t, payload.Success)
	require.Equal(t, "activity created", payload.Message)
	require.NotZero(t, payload.Data.ID)
	require.Equal(t, models.ActivityStatusPlanned, payload.Data.Status)
	require.NotNil(t, payload.Data.MaxParticipants)
	require.Equal(t, 10, *payload.Data.MaxParticipants)
}

func TestActivityHandlerCreateUnknownStaff(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := performJSON(t, app, http.MethodPost, "/api/v1/activities", map[string]interface{}{
		"title":         "Football Afternoon",
		"activity_date": time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		"created_by":    999,
	})
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()
}

func TestActivityHandlerCreateValidationFailure(t *testing.T) {
	app, db := setupTestApp(t)
	staff := seedTestStaff(t, db)

	resp := performJSON(t, app, http.MethodPost, "/api/v1/activities", map[string]interface{}{
		"activity_date": time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		"created_by":    staff.ID,
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestActivityHandlerGetAndList(t *testing.T) {
	app, db := setupTestApp(t)
	staff := seedTestStaff(t, db)
	activity := seedTestActivity(t, db, staff.ID, nil)

	resp := performJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/activities/%d", activity.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var single struct {
		Data dto.ActivityResponse `json:"data"`
	}
	decodeResponse(t, resp, &single)
	require.Equal(t, activity.ID, single.Data.ID)
	require.Equal(t, "Crafts Workshop", single.Data.Title)

	resp = performJSON(t, app, http.MethodGet, "/api/v1/activities", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var listed struct {
		Data []dto.ActivityResponse `json:"data"`
	}
	decodeResponse(t, resp, &listed)
	require.Len(t, listed.Data, 1)

	resp = performJSON(t, app, http.MethodGet, "/api/v1/activities/999", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestActivityHandlerPartialUpdateDistinguishesNullFromOmitted(t *testing.T) {
	app, db := setupTestApp(t)
	staff := seedTestStaff(t, db)

	description := "Weeding and planting"
	activity := models.Activity{
		Title:        "Garden Day",
		Description:  &description,
		ActivityDate: time.Now().Add(48 * time.Hour),
		Status:       models.ActivityStatusPlanned,
		CreatedBy:    staff.ID,
	}
	require.NoError(t, db.Create(&activity).Error)

	// Explicit null clears description; title changes; everything else stays.
	resp := performJSON(t, app, http.MethodPatch, fmt.Sprintf("/api/v1/activities/%d", activity.ID), map[string]interface{}{
		"title":       "Garden Afternoon",
		"description": nil,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated struct {
		Data dto.ActivityResponse `json:"data"`
	}
	decodeResponse(t, resp, &updated)
	require.Equal(t, "Garden Afternoon", updated.Data.Title)

	var stored models.Activity
	require.NoError(t, db.First(&stored, activity.ID).Error)
	require.Equal(t, "Garden Afternoon", stored.Title)
	require.Nil(t, stored.Description)
	require.Equal(t, models.ActivityStatusPlanned, stored.Status)

	// Null on a required column is rejected.
	resp = performJSON(t, app, http.MethodPatch, fmt.Sprintf("/api/v1/activities/%d", activity.ID), map[string]interface{}{
		"title": nil,
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = performJSON(t, app, http.MethodPatch, "/api/v1/activities/999", map[string]interface{}{
		"title": "Anything",
	})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestActivityHandlerStatusUpdate(t *testing.T) {
	app, db := setupTestApp(t)
	staff := seedTestStaff(t, db)
	activity := seedTestActivity(t, db, staff.ID, nil)

	resp := performJSON(t, app, http.MethodPatch, fmt.Sprintf("/api/v1/activities/%d/status", activity.ID), map[string]string{
		"status": "ONGOING",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated struct {
		Data dto.ActivityResponse `json:"data"`
	}
	decodeResponse(t, resp, &updated)
	require.Equal(t, models.ActivityStatusOngoing, updated.Data.Status)

	resp = performJSON(t, app, http.MethodPatch, fmt.Sprintf("/api/v1/activities/%d/status", activity.ID), map[string]string{
		"status": "PAUSED",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}
