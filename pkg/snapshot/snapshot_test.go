package snapshot

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_EmptyRead(t *testing.T) {
	s := NewStore()

	snap, ok := s.Read()
	assert.False(t, ok)
	assert.Zero(t, snap)
}

func TestStore_PublishThenRead(t *testing.T) {
	s := NewStore()

	want := Snapshot{LoadAvg: 0.42, LoadStd: 0.1, Endpoints: 3, CollectedAt: time.Now()}
	s.Publish(want)

	got, ok := s.Read()
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestStore_LastPublishWins(t *testing.T) {
	s := NewStore()

	s.Publish(Snapshot{LoadAvg: 0.1, Endpoints: 1})
	s.Publish(Snapshot{LoadAvg: 0.2, Endpoints: 2})
	s.Publish(Snapshot{LoadAvg: 0.3, Endpoints: 3})

	got, ok := s.Read()
	require.True(t, ok)
	assert.Equal(t, 0.3, got.LoadAvg)
	assert.Equal(t, 3, got.Endpoints)
}

// A reader must only ever observe a fully formed snapshot: every published
// snapshot has Endpoints == int(LoadAvg*10), so a torn read mixing two
// publishes breaks that relation.
func TestStore_NoTornReads(t *testing.T) {
	s := NewStore()

	stop := make(chan struct{})
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			n := i%10 + 1
			s.Publish(Snapshot{LoadAvg: float64(n) / 10, Endpoints: n})
		}
	}()

	for r := 0; r < 8; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				snap, ok := s.Read()
				if !ok {
					continue
				}
				if snap.Endpoints != int(snap.LoadAvg*10+0.5) {
					t.Errorf("torn read: %+v", snap)
					return
				}
			}
		}()
	}

	time.Sleep(100 * time.Millisecond)
	close(stop)
	wg.Wait()
}
