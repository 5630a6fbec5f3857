package utils

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/pkg/errors"
)

const (
	// 2024-01-01 UTC
	idEpoch = int64(1704067200000)

	workerBits = 5
	maxWorker  = int64(1<<workerBits - 1)
)

// NewIDNode builds a generator for one (datacenter, worker) pair. The pair is
// packed into the 10-bit snowflake node field. Ids grow with time, so
// ordering by id agrees with ordering by creation.
func NewIDNode(workerID, datacenterID int64) (*snowflake.Node, error) {
	if workerID < 0 || workerID > maxWorker {
		return nil, errors.Errorf("worker id %d out of range", workerID)
	}
	if datacenterID < 0 || datacenterID > maxWorker {
		return nil, errors.Errorf("datacenter id %d out of range", datacenterID)
	}
	snowflake.Epoch = idEpoch
	return snowflake.NewNode(datacenterID<<workerBits | workerID)
}

// IDTime recovers the creation instant encoded in an id.
func IDTime(id int64) time.Time {
	return time.UnixMilli(snowflake.ID(id).Time())
}

var defaultNode, _ = NewIDNode(1, 1)

// InitIDNode replaces the process-wide generator. Call it before serving.
func InitIDNode(workerID, datacenterID int64) error {
	node, err := NewIDNode(workerID, datacenterID)
	if err != nil {
		return err
	}
	defaultNode = node
	return nil
}

// NextID returns a new entity id from the process-wide generator.
func NextID() int64 {
	return defaultNode.Generate().Int64()
}
