package handler

import (
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// CreateStripeLinkHandler asks the core for a Stripe Connect onboarding URL
// the dashboard redirects the owner to. The core holds the Stripe keys.
func CreateStripeLinkHandler(c *gin.Context, statementsService *usecase.StatementsService) {
	token := c.GetString("core_token")

	var body struct {
		ReturnURL string `json:"returnUrl" binding:"required,url"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.BadRequest(c, "A valid returnUrl is required")
		return
	}

	url, err := statementsService.StripeConnectLink(c.Request.Context(), token, body.ReturnURL)
	if err != nil {
		utils.BadGateway(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"url": url})
}
