package renderer

import (
	"runtime"
	"sync"
)

// RowTask represents a row rendering task for the worker pool
type RowTask struct {
	Row int
}

// WorkerPool renders framebuffer rows in parallel.
// Rows are disjoint, so workers write to the shared framebuffer without locking.
type WorkerPool struct {
	taskQueue  chan RowTask
	workers    []*Worker
	numWorkers int
	wg         sync.WaitGroup
}

// Worker handles individual row rendering tasks
type Worker struct {
	raytracer   *Raytracer
	framebuffer *Framebuffer
	taskQueue   chan RowTask
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// A non-positive count starts one worker per CPU.
func NewWorkerPool(raytracer *Raytracer, fb *Framebuffer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:  make(chan RowTask, fb.Height), // Buffer for every row
		numWorkers: numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			raytracer:   raytracer,
			framebuffer: fb,
			taskQueue:   wp.taskQueue,
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

// Stop waits for queued rows to finish and shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		w.raytracer.renderRow(w.framebuffer, task.Row)
	}
}
