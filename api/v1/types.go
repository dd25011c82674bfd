// Package v1 holds the JSON types of the /api/v1 HTTP API.
package v1

import "time"

// EngineStats is the pool snapshot.
type EngineStats struct {
	TotalWorkers   int   `json:"totalWorkers"`
	ActiveWorkers  int   `json:"activeWorkers"`
	IdleWorkers    int   `json:"idleWorkers"`
	PendingTasks   int   `json:"pendingTasks"`
	TotalCompleted int64 `json:"totalCompleted"`
	IsPaused       bool  `json:"isPaused"`
}

// Worker describes one live worker. CurrentTaskKind and CurrentTaskPriority
// are omitted while the worker is idle.
type Worker struct {
	Id                  int     `json:"id"`
	Busy                bool    `json:"busy"`
	Completed           int64   `json:"completed"`
	RuntimeMs           int64   `json:"runtimeMs"`
	CurrentTaskKind     *string `json:"currentTaskKind,omitempty"`
	CurrentTaskPriority *string `json:"currentTaskPriority,omitempty"`
}

type WorkerList struct {
	Workers []Worker `json:"workers"`
}

// ResizeRequest is the body of PUT /engine/workers.
type ResizeRequest struct {
	Count *int `json:"count" binding:"required"`
}

// CancelResponse is returned by DELETE /engine/queue.
type CancelResponse struct {
	Canceled int `json:"canceled"`
}

// WorkloadRequest is the body of POST /engine/workloads. Kind defaults to
// CPU and priority to normal.
type WorkloadRequest struct {
	Count    int      `json:"count"`
	Kind     *string  `json:"kind,omitempty"`
	Priority *string  `json:"priority,omitempty"`
	Rate     *float64 `json:"rate,omitempty"`
}

// WorkloadBatch is one batch of a workload plan.
type WorkloadBatch struct {
	Kind     string `json:"kind"`
	Priority string `json:"priority"`
	Count    int    `json:"count"`
}

// WorkloadPlanRequest is the body of POST /engine/workloads/plan. Batches
// are fired in order.
type WorkloadPlanRequest struct {
	Batches []WorkloadBatch `json:"batches"`
	Rate    *float64        `json:"rate,omitempty"`
}

type WorkloadResponse struct {
	Ids []string `json:"ids"`
}

// TaskRecord is one entry of the task history.
type TaskRecord struct {
	Id         string    `json:"id"`
	Kind       string    `json:"kind"`
	Priority   string    `json:"priority"`
	WorkerId   int       `json:"workerId"`
	Status     string    `json:"status"`
	Error      *string   `json:"error,omitempty"`
	DurationMs int64     `json:"durationMs"`
	CreatedAt  time.Time `json:"createdAt"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

type TaskHistoryResponse struct {
	Page      int          `json:"page"`
	PageCount int          `json:"pageCount"`
	Total     int          `json:"total"`
	Tasks     []TaskRecord `json:"tasks"`
}

// GetHistoryParams are the query parameters of GET /engine/history.
type GetHistoryParams struct {
	Kind     *[]string `form:"kind"`
	Status   *[]string `form:"status"`
	Priority *[]string `form:"priority"`
	Page     *int      `form:"page"`
	PageSize *int      `form:"pageSize"`
}

type Health struct {
	Status string `json:"status"`
}

type Error struct {
	Error string `json:"error"`
}
