package v1

import (
	"fmt"

	"github.com/tmlos/hpc-engine/internal/models"
)

func NewEngineStatsFromModel(s models.EngineStats) EngineStats {
	return EngineStats{
		TotalWorkers:   s.TotalWorkers,
		ActiveWorkers:  s.ActiveWorkers,
		IdleWorkers:    s.IdleWorkers,
		PendingTasks:   s.PendingTasks,
		TotalCompleted: s.TotalCompleted,
		IsPaused:       s.IsPaused,
	}
}

// NewWorkerFromModel converts a models.WorkerDetail to an API Worker.
func NewWorkerFromModel(w models.WorkerDetail) Worker {
	apiWorker := Worker{
		Id:        w.ID,
		Busy:      w.Busy,
		Completed: w.Completed,
		RuntimeMs: w.Runtime.Milliseconds(),
	}
	if w.CurrentTaskKind != nil {
		kind := string(*w.CurrentTaskKind)
		apiWorker.CurrentTaskKind = &kind
	}
	if w.CurrentTaskPriority != nil {
		priority := w.CurrentTaskPriority.String()
		apiWorker.CurrentTaskPriority = &priority
	}
	return apiWorker
}

func NewWorkerListFromModel(workers []models.WorkerDetail) WorkerList {
	list := WorkerList{Workers: make([]Worker, 0, len(workers))}
	for _, w := range workers {
		list.Workers = append(list.Workers, NewWorkerFromModel(w))
	}
	return list
}

// NewTaskRecordFromModel converts a models.TaskRecord to an API TaskRecord.
func NewTaskRecordFromModel(r models.TaskRecord) TaskRecord {
	apiRecord := TaskRecord{
		Id:         r.ID,
		Kind:       string(r.Kind),
		Priority:   r.Priority.String(),
		WorkerId:   r.WorkerID,
		Status:     r.Status.Value(),
		DurationMs: r.Duration.Milliseconds(),
		CreatedAt:  r.CreatedAt,
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
	}
	if r.Error != "" {
		apiRecord.Error = &r.Error
	}
	return apiRecord
}

// ParseTaskKinds converts API kind params to model kinds.
func ParseTaskKinds(kinds []string) ([]models.TaskKind, error) {
	var result []models.TaskKind
	for _, k := range kinds {
		kind, err := models.ParseTaskKind(k)
		if err != nil {
			return nil, err
		}
		result = append(result, kind)
	}
	return result, nil
}

// ParseTaskStatuses converts API status params to model statuses.
func ParseTaskStatuses(statuses []string) ([]models.TaskStatus, error) {
	var result []models.TaskStatus
	for _, s := range statuses {
		switch models.TaskStatus(s) {
		case models.TaskStatusCompleted, models.TaskStatusFailed:
			result = append(result, models.TaskStatus(s))
		default:
			return nil, fmt.Errorf("invalid task status: %s", s)
		}
	}
	return result, nil
}

// ParsePriorities converts API priority params to model priorities.
func ParsePriorities(priorities []string) ([]models.Priority, error) {
	var result []models.Priority
	for _, p := range priorities {
		priority, err := models.ParsePriority(p)
		if err != nil || p == "" {
			return nil, fmt.Errorf("invalid priority: %s", p)
		}
		result = append(result, priority)
	}
	return result, nil
}

// NewWorkloadPlanFromRequest converts a plan request to a model plan.
func NewWorkloadPlanFromRequest(req WorkloadPlanRequest) *models.WorkloadPlan {
	plan := &models.WorkloadPlan{Batches: make([]models.WorkloadBatch, 0, len(req.Batches))}
	for _, b := range req.Batches {
		plan.Batches = append(plan.Batches, models.WorkloadBatch{Kind: b.Kind, Priority: b.Priority, Count: b.Count})
	}
	return plan
}
