package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/onehub-dev/onehub/internal/sources"
)

func GetDeals(ctx *gin.Context) {
	category := ctx.DefaultQuery("category", "electronics")

	deals := sources.Deals(category)

	ctx.JSON(http.StatusOK, gin.H{
		"category": category,
		"count":    len(deals),
		"deals":    deals,
	})
}
