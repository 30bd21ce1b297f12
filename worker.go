package main

// Worker es un ejecutor dentro del pool. Saca tareas de la cola compartida
// en orden y las ejecuta una a la vez; nunca sabe qué hay dentro de cada
// tarea.
type Worker struct {
	ID   int
	pool *WorkerPool
}

func NewWorker(id int, pool *WorkerPool) *Worker {
	return &Worker{
		ID:   id,
		pool: pool,
	}
}

// Run es el bucle del worker: pedir tarea, ejecutarla, repetir. Termina
// cuando el pool se detiene y la cola quedó vacía.
func (w *Worker) Run() {
	defer w.pool.wg.Done()

	for {
		task, ok := w.pool.take()
		if !ok {
			return
		}
		task()
	}
}
