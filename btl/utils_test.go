package btl

import "testing"

type taskFill struct {
	result []int
	q      int
}

func (task *taskFill) Run() {
	task.result[task.q] = task.q * task.q
}

func TestPoolRunsAllTasks(t *testing.T) {
	n := 100
	result := make([]int, n)

	taskPool := NewPool(4)
	for q := 0; q < n; q++ {
		taskPool.AddTask(&taskFill{result, q})
	}
	taskPool.Close()
	taskPool.WaitAll()

	for q := 0; q < n; q++ {
		if result[q] != q*q {
			t.Fatalf("task %d did not run: got %d", q, result[q])
		}
	}
}
