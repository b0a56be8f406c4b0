package engine

import (
	"github.com/nmiranda/backman/internal/list"
)

// Result is the outcome of one resource within a backup or restore pass.
// Err is nil on success.
type Result struct {
	Resource list.Resource
	Err      error
}

// Ok returns true if the resource was processed successfully.
func (r Result) Ok() bool {
	return r.Err == nil
}

// Report aggregates per-resource outcomes of a single backup or restore
// pass. Results appear in list order, exactly one per resource.
type Report struct {
	// List is the name of the processed list.
	List string

	// Results holds one entry per resource, in order.
	Results []Result
}

func newReport(listName string, capacity int) *Report {
	return &Report{
		List:    listName,
		Results: make([]Result, 0, capacity),
	}
}

func (r *Report) add(res list.Resource, err error) {
	r.Results = append(r.Results, Result{Resource: res, Err: err})
}

// Len returns the number of processed resources.
func (r *Report) Len() int {
	return len(r.Results)
}

// Succeeded returns the number of successfully processed resources.
func (r *Report) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if res.Ok() {
			n++
		}
	}
	return n
}

// Failed returns the number of resources that failed.
func (r *Report) Failed() int {
	return len(r.Results) - r.Succeeded()
}

// Ok returns true if every resource was processed successfully.
func (r *Report) Ok() bool {
	return r.Failed() == 0
}
