package handler

import (
	"io"
	"log"

	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// ListStatementsHandler lists statements over the requested window. The
// preset is resolved server-side so every consumer sees the same calendar
// arithmetic.
func ListStatementsHandler(c *gin.Context, statementsService *usecase.StatementsService) {
	userID := c.GetString("user_id")
	token := c.GetString("core_token")

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

	statements, err := statementsService.List(c.Request.Context(), token, userID, rng)
	if err != nil {
		utils.BadGateway(c, err.Error())
		return
	}

	utils.Success(c, gin.H{
		"preset":     preset,
		"label":      dto.PresetLabel(preset),
		"range":      rng,
		"statements": statements,
	})
}

// StatementPDFHandler streams a generated PDF through from the core.
func StatementPDFHandler(c *gin.Context, statementsService *usecase.StatementsService) {
	token := c.GetString("core_token")

	pdf, err := statementsService.PDF(c.Request.Context(), token, c.Param("id"))
	if err != nil {
		utils.BadGateway(c, err.Error())
		return
	}
	defer pdf.Close()

	c.Header("Content-Disposition", "attachment; filename=statement-"+c.Param("id")+".pdf")
	c.Header("Content-Type", "application/pdf")
	if _, err := io.Copy(c.Writer, pdf); err != nil {
		log.Printf("Error streaming statement PDF %s: %v", c.Param("id"), err)
	}
}

// ListListingsHandler lists the managed properties.
func ListListingsHandler(c *gin.Context, statementsService *usecase.StatementsService) {
	userID := c.GetString("user_id")
	token := c.GetString("core_token")

	listings, err := statementsService.Listings(c.Request.Context(), token, userID)
	if err != nil {
		utils.BadGateway(c, err.Error())
		return
	}

	utils.Success(c, listings)
}

// ListTagsHandler lists the property grouping tags.
func ListTagsHandler(c *gin.Context, statementsService *usecase.StatementsService) {
	userID := c.GetString("user_id")
	token := c.GetString("core_token")

	tags, err := statementsService.Tags(c.Request.Context(), token, userID)
	if err != nil {
		utils.BadGateway(c, err.Error())
		return
	}

	utils.Success(c, tags)
}
