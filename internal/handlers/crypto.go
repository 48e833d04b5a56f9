package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/onehub-dev/onehub/internal/sources"
	"github.com/onehub-dev/onehub/internal/types"
)

// GetCrypto serves the top-20 market snapshot, degrading to the tracker's
// cached copy and then the static mock.
func GetCrypto(ctx *gin.Context) {
	snapshot, err := Crypto.Snapshot(ctx.Request.Context())
	if err == nil {
		ctx.JSON(http.StatusOK, snapshot)
		return
	}

	logrus.Warnf("Crypto fetch failed: %v", err)

	var cached types.CryptoSnapshot
	hit, cacheErr := Cache.GetSnapshot(ctx.Request.Context(), "crypto", "", &cached)
	if cacheErr != nil {
		logrus.Warnf("Crypto cache read failed: %v", cacheErr)
	}
	if hit {
		ctx.JSON(http.StatusOK, cached)
		return
	}

	ctx.JSON(http.StatusOK, sources.MockCrypto())
}
