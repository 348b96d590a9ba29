package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/foodops/weekplan/pkg/application/services/scheduling"
	"github.com/foodops/weekplan/pkg/domain/entities"
)

type createScheduleRequest struct {
	WeekStart string `json:"week_start" binding:"required"`
	Replace   bool   `json:"replace"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleListProducts(c *gin.Context) {
	products, err := s.products.GetAll()
	if err != nil {
		s.log.Error().Err(err).Msg("list products")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (s *Server) handleListWeeks(c *gin.Context) {
	weeks, err := s.schedules.ListWeeks()
	if err != nil {
		s.log.Error().Err(err).Msg("list weeks")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load weeks"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"weeks": weeks})
}

func (s *Server) handleCreateSchedule(c *gin.Context) {
	var req createScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week_start is required"})
		return
	}
	anchor, err := time.Parse("2006-01-02", req.WeekStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week_start must be YYYY-MM-DD"})
		return
	}

	started := time.Now()
	result, err := s.service.Run(c.Request.Context(), scheduling.RunOptions{
		Anchor:  anchor,
		Replace: req.Replace,
	})
	s.monitor.ObserveRun(result, err, time.Since(started))
	if err != nil {
		if errors.Is(err, scheduling.ErrWeekAlreadyScheduled) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		s.log.Error().Err(err).Msg("scheduling run failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "scheduling run failed"})
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (s *Server) handleGetSchedule(c *gin.Context) {
	week, ok := s.weekParam(c)
	if !ok {
		return
	}
	entries, err := s.schedules.GetWeek(week.Start)
	if err != nil {
		s.log.Error().Err(err).Msg("get schedule")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load schedule"})
		return
	}
	if len(entries) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no schedule for week"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"week_start": week.Start,
		"week_end":   week.End(),
		"entries":    entries,
	})
}

func (s *Server) handleDeleteSchedule(c *gin.Context) {
	week, ok := s.weekParam(c)
	if !ok {
		return
	}
	exists, err := s.schedules.ExistsForWeek(week.Start)
	if err != nil {
		s.log.Error().Err(err).Msg("check schedule")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check schedule"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "no schedule for week"})
		return
	}
	if err := s.schedules.DeleteWeek(week.Start); err != nil {
		s.log.Error().Err(err).Msg("delete schedule")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete schedule"})
		return
	}
	c.Status(http.StatusNoContent)
}

// weekParam parses the :week path parameter and normalizes it to its Monday
func (s *Server) weekParam(c *gin.Context) (entities.Week, bool) {
	date, err := time.Parse("2006-01-02", c.Param("week"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week must be YYYY-MM-DD"})
		return entities.Week{}, false
	}
	return entities.WeekOf(date), true
}
