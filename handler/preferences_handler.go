package handler

import (
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// GetColumnLayoutHandler returns the user's saved layout for one table, or
// an empty payload when the frontend default applies.
func GetColumnLayoutHandler(c *gin.Context, preferencesService *usecase.PreferencesService) {
	userID := c.GetString("user_id")

	layout, err := preferencesService.GetLayout(userID, c.Param("table"))
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	if layout == nil {
		utils.Success(c, gin.H{"columns": []model.ColumnSetting{}})
		return
	}

	utils.Success(c, layout)
}

// SaveColumnLayoutHandler upserts column sizing/order/visibility.
func SaveColumnLayoutHandler(c *gin.Context, preferencesService *usecase.PreferencesService) {
	userID := c.GetString("user_id")

	var body struct {
		Columns []model.ColumnSetting `json:"columns" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	layout, err := preferencesService.SaveLayout(userID, c.Param("table"), body.Columns)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Success(c, layout)
}

// ResetColumnLayoutHandler removes a saved layout.
func ResetColumnLayoutHandler(c *gin.Context, preferencesService *usecase.PreferencesService) {
	userID := c.GetString("user_id")

	if err := preferencesService.ResetLayout(userID, c.Param("table")); err != nil {
		utils.NotFound(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"message": "Column layout reset"})
}
