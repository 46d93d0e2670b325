package http

import (
	"encoding/json"
	"testing"

	"smart-todo-backend/internal/model"
)

func TestBulkUpdateReqNestedUpdates(t *testing.T) {
	body := `{"task_ids":["a1","b2"],"updates":{"status":"completed","priority":"high"}}`
	var req bulkUpdateReq
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	in := req.toInput()
	if len(in.TaskIDs) != 2 || in.TaskIDs[0] != "a1" {
		t.Errorf("TaskIDs = %v, want [a1 b2]", in.TaskIDs)
	}
	if in.Status != model.TaskStatusCompleted {
		t.Errorf("Status = %q, want completed", in.Status)
	}
	if in.Priority != model.TaskPriorityHigh {
		t.Errorf("Priority = %q, want high", in.Priority)
	}
	if in.CategoryID != "" {
		t.Errorf("CategoryID = %q, want empty", in.CategoryID)
	}
}

func TestPrioritizeReqOptionalBody(t *testing.T) {
	var empty prioritizeReq
	if got := empty.toInput(); got.TaskIDs != nil {
		t.Errorf("empty request must target all open tasks, got %v", got.TaskIDs)
	}

	var req prioritizeReq
	if err := json.Unmarshal([]byte(`{"task_ids":["a1"]}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if in := req.toInput(); len(in.TaskIDs) != 1 || in.TaskIDs[0] != "a1" {
		t.Errorf("TaskIDs = %v, want [a1]", in.TaskIDs)
	}
}
