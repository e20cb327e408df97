package handler

import (
	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// ListSchedulesHandler returns every saved rule with its summary line.
func ListSchedulesHandler(c *gin.Context, schedulesService *usecase.SchedulesService) {
	userID := c.GetString("user_id")
	token := c.GetString("core_token")

	rules, err := schedulesService.List(c.Request.Context(), token, userID)
	if err != nil {
		utils.BadGateway(c, err.Error())
		return
	}

	utils.Success(c, dto.ToScheduleRuleResponses(rules))
}

// PreviewScheduleHandler builds and summarizes a rule without saving it.
// The modal calls this as the user edits the form.
func PreviewScheduleHandler(c *gin.Context, schedulesService *usecase.SchedulesService) {
	var form usecase.ScheduleRuleForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	rule, summary, err := schedulesService.Preview(form)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Success(c, gin.H{
		"rule":    rule,
		"summary": summary,
	})
}

// SaveScheduleHandler saves the rule for the tag in the path. The core owns
// persistence; failure leaves nothing half-saved here.
func SaveScheduleHandler(c *gin.Context, schedulesService *usecase.SchedulesService) {
	userID := c.GetString("user_id")
	token := c.GetString("core_token")

	var form usecase.ScheduleRuleForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	// The path names the tag; the body must agree or be silent
	tag := c.Param("tag")
	if form.TagName != "" && form.TagName != tag {
		utils.BadRequest(c, "Tag in body does not match tag in path")
		return
	}
	form.TagName = tag

	rule, err := schedulesService.Save(c.Request.Context(), token, userID, form)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Success(c, dto.ToScheduleRuleResponse(rule))
}
