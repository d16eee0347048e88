package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campus/internal/app/models/dto"
)

const (
	developmentMessage = "You are in the Development Environment!"
	productionMessage  = "You are in the Production Environment. Be careful!"
)

// InfoController reports facts about the running deployment
type InfoController struct {
	mode string
}

// NewInfoController creates a new InfoController for the given server mode
func NewInfoController(mode string) *InfoController {
	return &InfoController{mode: strings.ToLower(mode)}
}

// GetEnvironment tells the caller which environment it is talking to
// @Summary Current environment
// @Tags info
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.MessageData}
// @Router /info/environment [get]
func (c *InfoController) GetEnvironment(ctx *gin.Context) {
	message := developmentMessage
	if c.mode == "production" {
		message = productionMessage
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageData{Message: message}))
}
