// Copyright (c) 2024. Sudeep Raj.
// SPDX-License-Identifier: MIT

package api

import (
	"crypto/sha1"
	"encoding/hex"
	"net/http"

	"github.com/dgraph-io/ristretto"
	"github.com/gin-gonic/gin"

	"github.com/sudeeprj-pks/SCT-CS-3/pkg/strength"
)

const defaultCacheEntries = 16384

type assessApi struct {
	cfg   strength.Config
	cache *ristretto.Cache
}

func (a *assessApi) assessPassword(c *gin.Context) {
	var req assessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Cache on the SHA1 digest so the plaintext is never retained; the
	// scorer is deterministic, so a digest hit is always a valid answer.
	h := sha1.New()
	h.Write([]byte(req.Password))
	key := hex.EncodeToString(h.Sum(nil))

	if cached, ok := a.cache.Get(key); ok {
		c.JSON(http.StatusOK, cached.(strength.Assessment))
		return
	}

	result := strength.Assess(req.Password, a.cfg)
	a.cache.Set(key, result, 1)

	c.JSON(http.StatusOK, result)
}

func RegisterAssessApi(group *gin.RouterGroup, cfg strength.Config, cacheEntries int64) error {
	if cacheEntries <= 0 {
		cacheEntries = defaultCacheEntries
	}

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: cacheEntries * 10,
		MaxCost:     cacheEntries,
		BufferItems: 64,
	})
	if err != nil {
		return err
	}

	a := &assessApi{cfg: cfg, cache: cache}

	group.POST("/password", a.assessPassword)

	return nil
}
