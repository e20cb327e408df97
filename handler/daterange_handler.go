package handler

import (
	"time"

	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// referenceDate reads the optional ?date= query the tests and the dashboard
// use to pin "today"; it defaults to the server's local date.
func referenceDate(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), true
	}
	parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// ListPresetsHandler enumerates the date filter dropdown, each named preset
// resolved against the reference date.
func ListPresetsHandler(c *gin.Context) {
	today, ok := referenceDate(c)
	if !ok {
		utils.BadRequest(c, "date must be in YYYY-MM-DD format")
		return
	}
	utils.Success(c, dto.ToPresetResponses(today))
}

// ResolveDateRangeHandler maps a preset (or explicit custom dates) to a
// concrete range. Explicit dates demote the preset to custom, mirroring the
// filter control's behavior when a date field is edited by hand.
func ResolveDateRangeHandler(c *gin.Context, statementsService *usecase.StatementsService) {
	today, ok := referenceDate(c)
	if !ok {
		utils.BadRequest(c, "date must be in YYYY-MM-DD format")
		return
	}

	preset, rng, err := statementsService.ResolveWindow(
		model.Preset(c.Query("preset")),
		c.Query("startDate"),
		c.Query("endDate"),
		today,
	)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Success(c, gin.H{
		"preset": preset,
		"label":  dto.PresetLabel(preset),
		"range":  rng,
	})
}
