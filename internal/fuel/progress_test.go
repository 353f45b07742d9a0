package fuel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inovacc/fuelr/internal/model"
)

func TestRefresh_ProgressSeesEveryRecordInOrder(t *testing.T) {
	m1 := model.FuelModel{Name: "m1"}
	m2 := model.FuelModel{Name: "m2"}
	m3 := model.FuelModel{Name: "m3"}

	transport := &mockTransport{
		pages: map[int]string{
			1: pageJSON(t, m1, m2),
			2: pageJSON(t, m3),
		},
	}

	c := newTestClient(t, transport)

	var seen []string
	sink := ProgressFunc(func(m model.FuelModel) {
		seen = append(seen, m.Name)
	})

	_, err := c.Refresh(context.Background(), RefreshOptions{Progress: sink})
	require.NoError(t, err)
	require.Equal(t, []string{"m1", "m2", "m3"}, seen)
}

func TestRefresh_PanickingSinkIsSwallowed(t *testing.T) {
	m1 := model.FuelModel{Name: "m1"}

	transport := &mockTransport{
		pages: map[int]string{1: pageJSON(t, m1)},
	}

	c := newTestClient(t, transport)

	sink := ProgressFunc(func(model.FuelModel) {
		panic("sink exploded")
	})

	result, err := c.Refresh(context.Background(), RefreshOptions{Progress: sink})
	require.NoError(t, err)
	require.Equal(t, []model.FuelModel{m1}, result.Models)
}

func TestChannelSink_FullChannelDropsWithoutBlocking(t *testing.T) {
	m1 := model.FuelModel{Name: "m1"}
	m2 := model.FuelModel{Name: "m2"}
	m3 := model.FuelModel{Name: "m3"}

	transport := &mockTransport{
		pages: map[int]string{1: pageJSON(t, m1, m2, m3)},
	}

	c := newTestClient(t, transport)

	// room for one record only; nobody is draining
	ch := make(chan model.FuelModel, 1)

	result, err := c.Refresh(context.Background(), RefreshOptions{Progress: ChannelSink(ch)})
	require.NoError(t, err)
	require.Len(t, result.Models, 3)

	got := <-ch
	require.Equal(t, "m1", got.Name)
	require.Empty(t, ch)
}

func TestChannelSink_ClosedChannelIsTolerated(t *testing.T) {
	m1 := model.FuelModel{Name: "m1"}

	transport := &mockTransport{
		pages: map[int]string{1: pageJSON(t, m1)},
	}

	c := newTestClient(t, transport)

	ch := make(chan model.FuelModel)
	close(ch)

	result, err := c.Refresh(context.Background(), RefreshOptions{Progress: ChannelSink(ch)})
	require.NoError(t, err)
	require.Equal(t, []model.FuelModel{m1}, result.Models)
}
