package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	trainerRepo "fitbook/database/repository/trainer"
	"fitbook/services/availability"
	"fitbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// availabilityCacheTTL bounds how stale a cached availability response may be.
const availabilityCacheTTL = 5 * time.Minute

// TrainerHandler exposes the trainer read paths the booking flow consumes.
type TrainerHandler struct {
	Repo        trainerRepo.TrainerRepository
	Cache       *redis.Client
	HorizonDays int
}

func NewTrainerHandler(repo trainerRepo.TrainerRepository, cache *redis.Client, horizonDays int) *TrainerHandler {
	return &TrainerHandler{Repo: repo, Cache: cache, HorizonDays: horizonDays}
}

// GetTrainerHandler handles GET /api/trainers/:trainerId.
func (h *TrainerHandler) GetTrainerHandler(c *gin.Context) {
	trainer, err := h.Repo.GetByID(c.Param("trainerId"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve trainer", err.Error())
		return
	}
	if trainer == nil {
		utils.JSONError(c, http.StatusNotFound, "trainer not found", "")
		return
	}
	c.JSON(http.StatusOK, trainer)
}

// GetTrainerAvailabilityHandler handles GET /api/trainers/:trainerId/availability?days=N.
// It resolves the trainer's recurring slots into concrete bookable dates,
// cached briefly since slot edits are rare.
func (h *TrainerHandler) GetTrainerAvailabilityHandler(c *gin.Context) {
	trainerID := c.Param("trainerId")

	days := h.HorizonDays
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 365 {
			utils.JSONError(c, http.StatusBadRequest, "days must be a number between 1 and 365", "")
			return
		}
		days = n
	}

	ctx := c.Request.Context()
	cacheKey := fmt.Sprintf("availability:%s:%d", trainerID, days)
	if h.Cache != nil {
		if cached, err := h.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var dates []string
			if json.Unmarshal([]byte(cached), &dates) == nil {
				c.JSON(http.StatusOK, gin.H{"trainerId": trainerID, "dates": dates})
				return
			}
		}
	}

	trainer, err := h.Repo.GetByID(trainerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve trainer", err.Error())
		return
	}
	if trainer == nil {
		utils.JSONError(c, http.StatusNotFound, "trainer not found", "")
		return
	}

	dates := make([]string, 0)
	for d := range availability.ResolveAvailableDates(trainer.TimeSlots, days, time.Now()) {
		dates = append(dates, d.Format("2006-01-02"))
	}

	if h.Cache != nil {
		if encoded, err := json.Marshal(dates); err == nil {
			_ = h.Cache.Set(ctx, cacheKey, encoded, availabilityCacheTTL).Err()
		}
	}

	c.JSON(http.StatusOK, gin.H{"trainerId": trainerID, "dates": dates})
}
