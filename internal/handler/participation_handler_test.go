package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/harborlight/orphanage-api/internal/config"
	"github.com/harborlight/orphanage-api/internal/dto"
	"github.com/harborlight/orphanage-api/internal/handler"
	"github.com/harborlight/orphanage-api/internal/models"
	"github.com/harborlight/orphanage-api/internal/repository"
	"github.com/harborlight/orphanage-api/internal/router"
	"github.com/harborlight/orphanage-api/internal/service"
)

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Staff{}, &models.Child{}, &models.Activity{},
		&models.ActivityParticipation{}, &models.AuditLog{},
	))

	validate := validator.New(validator.WithRequiredStructEnabled())
	logger := zerolog.New(io.Discard)

	staffRepo := repository.NewStaffRepository(db)
	childRepo := repository.NewChildRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	participationRepo := repository.NewParticipationRepository(db)

	auditService := service.NewAuditService(repository.NewAuditLogRepository(db), logger)
	activityService := service.NewActivityService(activityRepo, staffRepo, validate, logger)
	participationService := service.NewParticipationService(participationRepo, activityRepo, childRepo, validate, nil, "", logger)
	childService := service.NewChildService(childRepo, validate, logger)

	app := fiber.New()
	router.Register(app, config.Config{AppName: "Test", JWTSecret: "secret"}, router.Dependencies{
		ActivityHandler:      handler.NewActivityHandler(activityService, auditService, logger),
		ParticipationHandler: handler.NewParticipationHandler(participationService, auditService, logger),
		ChildHandler:         handler.NewChildHandler(childService, logger),
		JWTMiddleware: func(c *fiber.Ctx) error {
			c.Locals("user_id", uint(1))
			c.Locals("user_role", "ADMIN")
			return c.Next()
		},
	})

	return app, db
}

func seedTestStaff(t *testing.T, db *gorm.DB) models.Staff {
	t.Helper()
	staff := models.Staff{FullName: "Grace Staff", Position: "Caretaker"}
	require.NoError(t, db.Create(&staff).Error)
	return staff
}

func seedTestChild(t *testing.T, db *gorm.DB, name string) models.Child {
	t.Helper()
	child := models.Child{FullName: name, Status: models.ChildStatusActive}
	require.NoError(t, db.Create(&child).Error)
	return child
}

func seedTestActivity(t *testing.T, db *gorm.DB, staffID uint, maxParticipants *int) models.Activity {
	t.Helper()
	activity := models.Activity{
		Title:           "Crafts Workshop",
		ActivityDate:    time.Now().Add(48 * time.Hour),
		Status:          models.ActivityStatusPlanned,
		MaxParticipants: maxParticipants,
		CreatedBy:       staffID,
	}
	require.NoError(t, db.Create(&activity).Error)
	return activity
}

func performJSON(t *testing.T, app *fiber.App, method, path string, payload interface{}) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeResponse(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}

func maxPointer(v int) *int {
	return &v
}

func enrollPayload(activityID, childID uint) map[string]interface{} {
	return map[string]interface{}{
		"activity_id": activityID,
		"child_id":    childID,
		"status":      "REGISTERED",
	}
}

func TestParticipationHandlerEnrollCreates(t *testing.T) {
	app, db := setupTestApp(t)
	staff := seedTestStaff(t, db)
	child := seedTestChild(t, db, "Amara")
	activity := seedTestActivity(t, db, staff.ID, maxPointer(5))

	resp := performJSON(t, app, http.MethodPost, "/api/v1/participations", enrollPayload(activity.ID, child.ID))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var payload struct {
		Success bool                      `json:"success"`
		Message string                    `json:"message"`
		Data    dto.ParticipationResponse `json:"data"`
	}
	decodeResponse(t, resp, &payload)
	require.True(t, payload.Success)
	require.Equal(t, "child enrolled", payload.Message)
	require.NotZero(t, payload.Data.ID)
	require.Equal(t, activity.ID, payload.Data.ActivityID)
	require.Equal(t, child.ID, payload.Data.ChildID)
	require.Equal(t, models.ParticipationStatusRegistered, payload.Data.Status)
}

func TestParticipationHandlerEnrollDuplicateConflicts(t *testing.T) {
	app, db := setupTestApp(t)
	staff := seedTestStaff(t, db)
	child := seedTestChild(t, db, "Amara")
	activity := seedTestActivity(t, db, staff.ID, nil)

	resp := performJSON(t, app, http.MethodPost, "/api/v1/participations", enrollPayload(activity.ID, child.ID))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = performJSON(t, app, http.MethodPost, "/api/v1/participations", enrollPayload(activity.ID, child.ID))
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var payload struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	decodeResponse(t, resp, &payload)
	require.False(t, payload.Success)
	require.Contains(t, payload.Message, "already enrolled")
}

func TestParticipationHandlerEnrollCapacityConflicts(t *testing.T) {
	app, db := setupTestApp(t)
	staff := seedTestStaff(t, db)
	first := seedTestChild(t, db, "Amara")
	second := seedTestChild(t, db, "Brian")
	activity := seedTestActivity(t, db, staff.ID, maxPointer(1))

	resp := performJSON(t, app, http.MethodPost, "/api/v1/participations", enrollPayload(activity.ID, first.ID))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = performJSON(t, app, http.MethodPost, "/api/v1/participations", enrollPayload(activity.ID, second.ID))
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestParticipationHandlerEnrollUnknownReferences(t *testing.T) {
	app, db := setupTestApp(t)
	staff := seedTestStaff(t, db)
	child := seedTestChild(t, db, "Amara")
	activity := seedTestActivity(t, db, staff.ID, nil)

	resp := performJSON(t, app, http.MethodPost, "/api/v1/participations", enrollPayload(999, child.ID))
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()

	resp = performJSON(t, app, http.MethodPost, "/api/v1/participations", enrollPayload(activity.ID, 999))
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()
}

func TestParticipationHandlerEnrollRejectsBadStatus(t *testing.T) {
	app, db := setupTestApp(t)
	staff := seedTestStaff(t, db)
	child := seedTestChild(t, db, "Amara")
	activity := seedTestActivity(t, db, staff.ID, nil)

	resp := performJSON(t, app, http.MethodPost, "/api/v1/participations", map[string]interface{}{
		"activity_id": activity.ID,
		"child_id":    child.ID,
		"status":      "WAITLISTED",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestParticipationHandlerListsByActivityAndChild(t *testing.T) {
	app, db := setupTestApp(t)
	staff := seedTestStaff(t, db)
	child := seedTestChild(t, db, "Amara")
	activity := seedTestActivity(t, db, staff.ID, nil)

	resp := performJSON(t, app, http.MethodPost, "/api/v1/participations", enrollPayload(activity.ID, child.ID))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = performJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/activities/%d/participants", activity.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var byActivity struct {
		Data []dto.ParticipationResponse `json:"data"`
	}
	decodeResponse(t, resp, &byActivity)
	require.Len(t, byActivity.Data, 1)
	require.Equal(t, child.ID, byActivity.Data[0].ChildID)

	resp = performJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/children/%d/participations", child.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var byChild struct {
		Data []dto.ParticipationResponse `json:"data"`
	}
	decodeResponse(t, resp, &byChild)
	require.Len(t, byChild.Data, 1)
	require.Equal(t, activity.ID, byChild.Data[0].ActivityID)

	// Unknown parents are not an error for reads; they are just empty.
	resp = performJSON(t, app, http.MethodGet, "/api/v1/activities/999/participants", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var empty struct {
		Data []dto.ParticipationResponse `json:"data"`
	}
	decodeResponse(t, resp, &empty)
	require.Empty(t, empty.Data)
}

func TestParticipationHandlerUpdateStatus(t *testing.T) {
	app, db := setupTestApp(t)
	staff := seedTestStaff(t, db)
	child := seedTestChild(t, db, "Amara")
	activity := seedTestActivity(t, db, staff.ID, nil)

	resp := performJSON(t, app, http.MethodPost, "/api/v1/participations", enrollPayload(activity.ID, child.ID))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created struct {
		Data dto.ParticipationResponse `json:"data"`
	}
	decodeResponse(t, resp, &created)

	resp = performJSON(t, app, http.MethodPatch, fmt.Sprintf("/api/v1/participations/%d/status", created.Data.ID), map[string]string{
		"status": "ATTENDED",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated struct {
		Data dto.ParticipationResponse `json:"data"`
	}
	decodeResponse(t, resp, &updated)
	require.Equal(t, models.ParticipationStatusAttended, updated.Data.Status)

	resp = performJSON(t, app, http.MethodPatch, "/api/v1/participations/999/status", map[string]string{
		"status": "ATTENDED",
	})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestParticipationHandlerRemoveReportsSuccessFlag(t *testing.T) {
	app, db := setupTestApp(t)
	staff := seedTestStaff(t, db)
	child := seedTestChild(t, db, "Amara")
	activity := seedTestActivity(t, db, staff.ID, nil)

	resp := performJSON(t, app, http.MethodPost, "/api/v1/participations", enrollPayload(activity.ID, child.ID))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created struct {
		Data dto.ParticipationResponse `json:"data"`
	}
	decodeResponse(t, resp, &created)

	resp = performJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/v1/participations/%d", created.Data.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var first struct {
		Data dto.RemovalResponse `json:"data"`
	}
	decodeResponse(t, resp, &first)
	require.True(t, first.Data.Success)

	// Second removal of the same id is not an error, just a no-op.
	resp = performJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/v1/participations/%d", created.Data.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var second struct {
		Data dto.RemovalResponse `json:"data"`
	}
	decodeResponse(t, resp, &second)
	require.False(t, second.Data.Success)

	resp = performJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/activities/%d/participants", activity.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var listed struct {
		Data []dto.ParticipationResponse `json:"data"`
	}
	decodeResponse(t, resp, &listed)
	require.Empty(t, listed.Data)
}
