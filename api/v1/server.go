package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /health)
	GetHealth(c *gin.Context)
	// (GET /engine/stats)
	GetEngineStats(c *gin.Context)
	// (GET /engine/workers)
	GetWorkers(c *gin.Context)
	// (PUT /engine/workers)
	ResizeWorkers(c *gin.Context)
	// (POST /engine/workers)
	AddWorker(c *gin.Context)
	// (DELETE /engine/workers)
	RemoveWorker(c *gin.Context)
	// (POST /engine/pause)
	PauseEngine(c *gin.Context)
	// (POST /engine/resume)
	ResumeEngine(c *gin.Context)
	// (DELETE /engine/queue)
	CancelQueue(c *gin.Context)
	// (POST /engine/workloads)
	FireWorkload(c *gin.Context)
	// (POST /engine/workloads/plan)
	FireWorkloadPlan(c *gin.Context)
	// (GET /engine/history)
	GetHistory(c *gin.Context, params GetHistoryParams)
	// (GET /engine/history/{id})
	GetHistoryRecord(c *gin.Context, id string)
}

// GinServerOptions provides options for the Gin server.
type GinServerOptions struct {
	// WriteMiddlewares run before every state changing handler.
	WriteMiddlewares []gin.HandlerFunc
}

// RegisterHandlers creates http.Handler with routing matching the API.
func RegisterHandlers(router gin.IRouter, si ServerInterface) {
	RegisterHandlersWithOptions(router, si, GinServerOptions{})
}

// RegisterHandlersWithOptions creates http.Handler with additional options.
func RegisterHandlersWithOptions(router gin.IRouter, si ServerInterface, options GinServerOptions) {
	write := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, options.WriteMiddlewares...), h)
	}

	router.GET("/health", si.GetHealth)
	router.GET("/engine/stats", si.GetEngineStats)
	router.GET("/engine/workers", si.GetWorkers)
	router.PUT("/engine/workers", write(si.ResizeWorkers)...)
	router.POST("/engine/workers", write(si.AddWorker)...)
	router.DELETE("/engine/workers", write(si.RemoveWorker)...)
	router.POST("/engine/pause", write(si.PauseEngine)...)
	router.POST("/engine/resume", write(si.ResumeEngine)...)
	router.DELETE("/engine/queue", write(si.CancelQueue)...)
	router.POST("/engine/workloads", write(si.FireWorkload)...)
	router.POST("/engine/workloads/plan", write(si.FireWorkloadPlan)...)
	router.GET("/engine/history", func(c *gin.Context) {
		params, err := bindGetHistoryParams(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, Error{Error: err.Error()})
			return
		}
		si.GetHistory(c, params)
	})
	router.GET("/engine/history/:id", func(c *gin.Context) {
		si.GetHistoryRecord(c, c.Param("id"))
	})
}

func bindGetHistoryParams(c *gin.Context) (GetHistoryParams, error) {
	var params GetHistoryParams

	if kinds, ok := c.GetQueryArray("kind"); ok {
		params.Kind = &kinds
	}
	if statuses, ok := c.GetQueryArray("status"); ok {
		params.Status = &statuses
	}
	if priorities, ok := c.GetQueryArray("priority"); ok {
		params.Priority = &priorities
	}

	intParam := func(name string) (*int, error) {
		raw, ok := c.GetQuery(name)
		if !ok {
			return nil, nil
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid format for parameter %s: %w", name, err)
		}
		return &v, nil
	}

	var err error
	if params.Page, err = intParam("page"); err != nil {
		return params, err
	}
	if params.PageSize, err = intParam("pageSize"); err != nil {
		return params, err
	}
	return params, nil
}
