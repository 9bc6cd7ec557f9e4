package btl

import "sync"

//HandleError interrupts the execution when err is not nil.
func HandleError(err error) {
	if err != nil {
		panic(err)
	}
}

//Task is one unit of work for a Pool.
type Task interface {
	Run()
}

//Pool runs tasks on a fixed number of worker goroutines.
type Pool struct {
	tasks chan Task
	wg    sync.WaitGroup
}

//NewPool creates a pool with threadsNum workers.
func NewPool(threadsNum int) *Pool {
	pool := &Pool{tasks: make(chan Task)}
	for ind := 0; ind < threadsNum; ind++ {
		pool.wg.Add(1)
		go func() {
			defer pool.wg.Done()
			for task := range pool.tasks {
				task.Run()
			}
		}()
	}
	return pool
}

//AddTask submits one task. Blocks until a worker is free to pick it up.
func (pool *Pool) AddTask(task Task) {
	pool.tasks <- task
}

//Close signals that no more tasks will be added.
func (pool *Pool) Close() {
	close(pool.tasks)
}

//WaitAll blocks until every submitted task has finished.
func (pool *Pool) WaitAll() {
	pool.wg.Wait()
}
