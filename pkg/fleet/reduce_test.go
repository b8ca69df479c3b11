package fleet

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce_Empty(t *testing.T) {
	_, err := Reduce(nil)
	assert.ErrorIs(t, err, ErrNoReports)
}

func TestReduce_SingleMember(t *testing.T) {
	snap, err := Reduce([]Report{{WorkerID: "w-1", CPUPercent: 42}})
	require.NoError(t, err)

	assert.Equal(t, 0.42, snap.LoadAvg)
	assert.Equal(t, 0.0, snap.LoadStd)
	assert.Equal(t, 1, snap.Endpoints)
	assert.False(t, snap.CollectedAt.IsZero())
}

func TestReduce_MeanAndStd(t *testing.T) {
	reports := []Report{
		{WorkerID: "w-1", CPUPercent: 20},
		{WorkerID: "w-2", CPUPercent: 40},
		{WorkerID: "w-3", CPUPercent: 60},
	}

	snap, err := Reduce(reports)
	require.NoError(t, err)

	assert.InDelta(t, 0.4, snap.LoadAvg, 1e-9)
	// population stddev of {0.2, 0.4, 0.6}
	assert.InDelta(t, math.Sqrt(0.08/3), snap.LoadStd, 1e-9)
	assert.Equal(t, 3, snap.Endpoints)
}

func TestReduce_NegativeCPUClampedToZero(t *testing.T) {
	snap, err := Reduce([]Report{{CPUPercent: -5}, {CPUPercent: 100}})
	require.NoError(t, err)

	assert.InDelta(t, 0.5, snap.LoadAvg, 1e-9)
}

func TestReport_Load(t *testing.T) {
	assert.Equal(t, 0.7, Report{CPUPercent: 70}.Load())
	assert.Equal(t, 0.0, Report{CPUPercent: -1}.Load())
	assert.Equal(t, 1.5, Report{CPUPercent: 150}.Load())
}
