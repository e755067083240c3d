package tracer

import (
	"runtime"
	"sync"

	"github.com/df07/go-optical-raytracer/pkg/core"
)

// LineageTask is one source ray submitted to the worker pool
type LineageTask struct {
	Index int // Position of the source ray, used for deterministic ordering
	Ray   core.RayState
}

// LineageResult contains the paths traced from one source ray
type LineageResult struct {
	Index int
	Paths []RayPath
	Stats TraceStats
}

// WorkerPool traces independent lineages in parallel
type WorkerPool struct {
	taskQueue   chan LineageTask
	resultQueue chan LineageResult
	workers     []*Worker
	wg          sync.WaitGroup
}

// Worker handles individual lineage tasks
type Worker struct {
	ID          int
	tracer      *Tracer
	taskQueue   chan LineageTask
	resultQueue chan LineageResult
}

// NewWorkerPool creates a worker pool sized for maxTasks lineages
func NewWorkerPool(tracer *Tracer, maxTasks int, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan LineageTask, maxTasks),   // Buffer for every lineage
		resultQueue: make(chan LineageResult, maxTasks), // Buffer for every result
	}

	// The tracer is read-only during a trace and shared by all workers
	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			tracer:      tracer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a lineage to the worker pool
func (wp *WorkerPool) SubmitTask(task LineageTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed lineage
func (wp *WorkerPool) GetResult() (LineageResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		paths, stats := w.tracer.traceLineage(task.Index, task.Ray)
		w.resultQueue <- LineageResult{
			Index: task.Index,
			Paths: paths,
			Stats: stats,
		}
	}
}

func defaultWorkers() int {
	return runtime.NumCPU()
}
