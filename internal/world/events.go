package world

import "time"

// Recorder получает события мира для метрик. Вызывается под мьютексом World,
// поэтому реализация не должна блокироваться.
type Recorder interface {
	ChunkCreated()
	BlocksEnqueued(n int)
	BlocksMaterialized(n int)
	QueueDepth(n int)
	StepDuration(d time.Duration)
	BlockRemoved(kind BlockKind)
	BlockPlaced(kind BlockKind)
	MutationRejected(op string, err error)
	PassCompleted(d time.Duration)
	SetReady(ready bool)
}

// nopRecorder используется, когда метрики не подключены
type nopRecorder struct{}

func (nopRecorder) ChunkCreated()                  {}
func (nopRecorder) BlocksEnqueued(int)             {}
func (nopRecorder) BlocksMaterialized(int)         {}
func (nopRecorder) QueueDepth(int)                 {}
func (nopRecorder) StepDuration(time.Duration)     {}
func (nopRecorder) BlockRemoved(BlockKind)         {}
func (nopRecorder) BlockPlaced(BlockKind)          {}
func (nopRecorder) MutationRejected(string, error) {}
func (nopRecorder) PassCompleted(time.Duration)    {}
func (nopRecorder) SetReady(bool)                  {}
