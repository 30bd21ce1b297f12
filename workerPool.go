package main

import (
	"log"
	"runtime"
	"sync"
)

// Task es una unidad de trabajo diferida: la atención completa de una
// conexión. No devuelve nada y no propaga fallos al pool; cualquier error
// interno se maneja dentro de la tarea misma.
type Task func()

// WorkerPool es un conjunto fijo de workers que sacan tareas de una cola
// FIFO compartida. La cola es la única pieza de estado mutable compartido
// del servidor: se muta solo bajo el mutex y la condición despierta a los
// workers que esperan.
type WorkerPool struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   []Task
	running bool

	Workers []*Worker
	wg      sync.WaitGroup
}

// NewWorkerPool crea el pool y arranca sus workers. Si la cantidad pedida
// no es positiva se usa la concurrencia de hardware disponible.
func NewWorkerPool(cantidad int) *WorkerPool {
	if cantidad <= 0 {
		cantidad = runtime.NumCPU()
	}

	pool := &WorkerPool{running: true}
	pool.cond = sync.NewCond(&pool.mu)

	for i := 0; i < cantidad; i++ {
		worker := NewWorker(i+1, pool)
		pool.Workers = append(pool.Workers, worker)
		pool.wg.Add(1)
		go worker.Run()
	}

	log.Printf("WorkerPool iniciado con %d workers", cantidad)
	return pool
}

// Submit encola una tarea y despierta a un worker. Devuelve de inmediato,
// sin esperar la ejecución: la cola no tiene límite de tamaño.
func (wp *WorkerPool) Submit(task Task) {
	wp.mu.Lock()
	wp.queue = append(wp.queue, task)
	wp.mu.Unlock()

	wp.cond.Signal()
}

// Stop señala a los workers que no acepten más trabajo, los despierta y
// espera a que terminen. Las tareas ya encoladas se ejecutan igual: los
// workers drenan la cola antes de salir.
func (wp *WorkerPool) Stop() {
	wp.mu.Lock()
	wp.running = false
	wp.mu.Unlock()

	wp.cond.Broadcast()
	wp.wg.Wait()
}

// take bloquea hasta que haya una tarea o el pool esté detenido con la
// cola vacía. Cada tarea la recibe exactamente un worker.
func (wp *WorkerPool) take() (Task, bool) {
	wp.mu.Lock()
	defer wp.mu.Unlock()

	for wp.running && len(wp.queue) == 0 {
		wp.cond.Wait()
	}

	if !wp.running && len(wp.queue) == 0 {
		return nil, false
	}

	task := wp.queue[0]
	wp.queue = wp.queue[1:]
	return task, true
}
