package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campus/internal/app/models/dto"
	"github.com/yigit/campus/internal/middleware"
	"github.com/yigit/campus/internal/pkg/apperrors"
)

// parseIDParam reads a positive int64 path parameter
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewInvalidArgumentError(name+" must be a positive number"))
		return 0, false
	}
	return id, true
}

func respond(ctx *gin.Context, status int, data interface{}, err error) {
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(status, dto.NewSuccessResponse(data))
}

func ok(ctx *gin.Context, data interface{}, err error) {
	respond(ctx, http.StatusOK, data, err)
}

func created(ctx *gin.Context, data interface{}, err error) {
	respond(ctx, http.StatusCreated, data, err)
}
